// component/enemy.go
package component

// BehaviorState is the behavioral state of one enemy. Transitions are driven
// exclusively by the behavior system; Destroyed is terminal.
type BehaviorState int

const (
	StateEntering BehaviorState = iota
	StateFormation
	StateAttacking
	StateRetreating
	StateDestroyed
)

func (s BehaviorState) String() string {
	switch s {
	case StateEntering:
		return "ENTERING"
	case StateFormation:
		return "FORMATION"
	case StateAttacking:
		return "ATTACKING"
	case StateRetreating:
		return "RETREATING"
	case StateDestroyed:
		return "DESTROYED"
	default:
		return "UNKNOWN"
	}
}

// Enemy represents a hostile entity.
type Enemy struct {
	DefID         string // ID in defs.EnemyLibrary
	State         BehaviorState
	FormationSlot int     // assigned slot index, kept through attack runs for the retreat target
	Points        int
	FireCooldown  float64 // seconds until the next fire roll may succeed
	AttackElapsed float64 // time spent in the current attack run
	AttackTargetX float64 // player x captured when the attack started
}

// FormationBound reports whether the enemy currently occupies its formation
// slot. An attacking enemy has broken away and is not bound, even though the
// slot index stays reserved for its retreat.
func (e *Enemy) FormationBound() bool {
	switch e.State {
	case StateEntering, StateFormation, StateRetreating:
		return true
	default:
		return false
	}
}
