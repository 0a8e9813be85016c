package game

import "fmt"

// ErrorCode classifies a command rejection. All rejections are recoverable:
// state is left untouched and the reason is surfaced to the caller.
type ErrorCode int

const (
	// InvalidIndex means the room position is out of the current bounds.
	InvalidIndex ErrorCode = iota
	// InvalidAction covers illegal commands in the current state: skipping
	// twice in a row, skipping after a card was played, acting on an empty
	// room, or any command after the game is over.
	InvalidAction
	// IllegalWeaponUse means weapon combat was chosen with no weapon
	// equipped, or against a monster the dulled weapon can no longer hit.
	IllegalWeaponUse
)

func (c ErrorCode) String() string {
	switch c {
	case InvalidIndex:
		return "InvalidIndex"
	case InvalidAction:
		return "InvalidAction"
	case IllegalWeaponUse:
		return "IllegalWeaponUse"
	default:
		return "Unknown"
	}
}

// RuleError is a rejected command. It wraps nothing: rule rejections are
// leaves, not propagated failures.
type RuleError struct {
	Code   ErrorCode
	Reason string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

// Is matches against the code sentinels below so callers can write
// errors.Is(err, game.ErrInvalidAction).
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Reason == "" && t.Code == e.Code
}

// Code sentinels for errors.Is.
var (
	ErrInvalidIndex     = &RuleError{Code: InvalidIndex}
	ErrInvalidAction    = &RuleError{Code: InvalidAction}
	ErrIllegalWeaponUse = &RuleError{Code: IllegalWeaponUse}
)

func rejectf(code ErrorCode, format string, args ...any) error {
	return &RuleError{Code: code, Reason: fmt.Sprintf(format, args...)}
}
