package enemy

import "fmt"

// Kind identifies what an enemy entry spawns or commands
type Kind uint8

// Enemy kinds. Values below PageSkip are the in-game object identifiers.
const (
	GreenKoopa Kind = iota
	RedKoopaWalkOff
	BuzzyBeetle
	RedKoopa
	GreenKoopaStationary
	HammerBro
	Goomba
	Blooper
	BulletBill
	GreenParatroopaStationary
	GreenCheepCheep
	RedCheepCheep
	Podoboo
	PiranhaPlant
	GreenParatroopaLeaping
	RedParatroopaVertical
	GreenParatroopaHorizontal
	Lakitu
	Spiny
	_
	FlyingCheepCheepFrenzy
	BowserFire
	Fireworks
	BulletBillOrCheepCheepFrenzy
	StopFrenzy
	_
	_
	FirebarClockwise
	FastFirebarClockwise
	FirebarCounterClockwise
	FastFirebarCounterClockwise
	LongFirebarClockwise
	_
	_
	_
	_
	BalanceLift
	LiftUpDown
	LiftUp
	LiftDown
	LiftLeftRight
	LiftFalling
	LiftRight
	ShortLiftUp
	ShortLiftDown
	Bowser
	_
	_
	_
	_
	_
	_
	WarpZone
	Retainer
	_
	TwoGoombasLow
	ThreeGoombasLow
	TwoGoombasHigh
	ThreeGoombasHigh
	TwoKoopasLow
	ThreeKoopasLow
	TwoKoopasHigh
	ThreeKoopasHigh
	_

	// Commands rather than enemies
	PageSkip
	AreaChange

	Invalid
)

const numIDs = 0x40

var kindNames = map[Kind]string{
	GreenKoopa:                   "green koopa troopa",
	RedKoopaWalkOff:              "red koopa troopa (walks off floors)",
	BuzzyBeetle:                  "buzzy beetle",
	RedKoopa:                     "red koopa troopa",
	GreenKoopaStationary:         "green koopa troopa (stationary)",
	HammerBro:                    "hammer bro",
	Goomba:                       "goomba",
	Blooper:                      "blooper",
	BulletBill:                   "bullet bill",
	GreenParatroopaStationary:    "green paratroopa (stationary)",
	GreenCheepCheep:              "green cheep cheep",
	RedCheepCheep:                "red cheep cheep",
	Podoboo:                      "podoboo",
	PiranhaPlant:                 "piranha plant",
	GreenParatroopaLeaping:       "green paratroopa (leaping)",
	RedParatroopaVertical:        "red paratroopa (vertical)",
	GreenParatroopaHorizontal:    "green paratroopa (horizontal)",
	Lakitu:                       "lakitu",
	Spiny:                        "spiny",
	FlyingCheepCheepFrenzy:       "flying cheep cheep frenzy",
	BowserFire:                   "bowser fire",
	Fireworks:                    "fireworks",
	BulletBillOrCheepCheepFrenzy: "bullet bill or cheep cheep frenzy",
	StopFrenzy:                   "stop frenzy",
	FirebarClockwise:             "firebar (clockwise)",
	FastFirebarClockwise:         "fast firebar (clockwise)",
	FirebarCounterClockwise:      "firebar (counter-clockwise)",
	FastFirebarCounterClockwise:  "fast firebar (counter-clockwise)",
	LongFirebarClockwise:         "long firebar (clockwise)",
	BalanceLift:                  "balance lift",
	LiftUpDown:                   "lift (up and down)",
	LiftUp:                       "lift (up)",
	LiftDown:                     "lift (down)",
	LiftLeftRight:                "lift (left and right)",
	LiftFalling:                  "lift (falling)",
	LiftRight:                    "lift (right)",
	ShortLiftUp:                  "short lift (up)",
	ShortLiftDown:                "short lift (down)",
	Bowser:                       "bowser",
	WarpZone:                     "warp zone",
	Retainer:                     "toad or princess",
	TwoGoombasLow:                "two goombas (y=10)",
	ThreeGoombasLow:              "three goombas (y=10)",
	TwoGoombasHigh:               "two goombas (y=6)",
	ThreeGoombasHigh:             "three goombas (y=6)",
	TwoKoopasLow:                 "two koopa troopas (y=10)",
	ThreeKoopasLow:               "three koopa troopas (y=10)",
	TwoKoopasHigh:                "two koopa troopas (y=6)",
	ThreeKoopasHigh:              "three koopa troopas (y=6)",
	PageSkip:                     "page skip",
	AreaChange:                   "area change",
	Invalid:                      "invalid",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%#02x)", uint8(k))
}

// Known reports whether k is a defined enemy or command
func (k Kind) Known() bool {
	_, ok := kindNames[k]
	return ok && k != Invalid
}
