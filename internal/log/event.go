package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewGame EventType = iota
	EventDealRoom
	EventHeal
	EventPotionWasted
	EventEquip
	EventWeaponKill
	EventBarehanded
	EventSkip
	EventFinalCard
	EventVictory
	EventDefeat
)

func (e EventType) String() string {
	switch e {
	case EventNewGame:
		return "NewGame"
	case EventDealRoom:
		return "DealRoom"
	case EventHeal:
		return "Heal"
	case EventPotionWasted:
		return "PotionWasted"
	case EventEquip:
		return "Equip"
	case EventWeaponKill:
		return "WeaponKill"
	case EventBarehanded:
		return "Barehanded"
	case EventSkip:
		return "Skip"
	case EventFinalCard:
		return "FinalCard"
	case EventVictory:
		return "Victory"
	case EventDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// GameEvent is a single narrated state transition, tagged with the turn
// number at the time of append.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // 1-based turn counter
	Type    EventType // event type
	Card    string    // card display (if applicable)
	Details string    // human-readable detail string
}
