package bonus

import "time"

type BonusType string

const (
	BonusTypeWeekly  BonusType = "Weekly"
	BonusTypeMonthly BonusType = "Monthly"
	BonusTypeSpot    BonusType = "Spot"
)

// Bonus is an incentive payout. Bonuses carry no standalone date; they are
// matched to a pay cycle by label equality alone, unlike sales and fines
// which match by date-range membership. The asymmetry is preserved from the
// legacy system on purpose.
type Bonus struct {
	ID          string
	AgentCNIC   string
	AgentName   string
	CycleLabel  string
	Type        BonusType
	TargetSales int
	ActualSales int
	Amount      int64
	CreatedAt   time.Time
}
