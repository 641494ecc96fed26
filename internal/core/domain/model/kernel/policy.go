package kernel

import (
	"errors"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
	"github.com/Salamjean/kksExpress-backend/internal/pkg/guard"
)

// Policy default values. These mirror the operational policy of the platform
// and are only defaults: the effective values are injected through NewPolicy
// so that tests and deployments can vary them without touching engine logic.
const (
	// PolicyDefaultDailyQuota is the fixed daily amount a courier owes, in currency units.
	PolicyDefaultDailyQuota = 7000
	// PolicyDefaultMaxActiveOrders caps how many orders a courier may hold in
	// an active status at the same time.
	PolicyDefaultMaxActiveOrders = 5
	// PolicyDefaultFee is the default order fee when the sender provides none.
	PolicyDefaultFee = 100
	// PolicyDefaultAverageSpeedKmh is the assumed courier speed for ETA estimates.
	PolicyDefaultAverageSpeedKmh = 30.0
)

// ErrPolicyIsNotConstructed is returned when using an improperly initialized Policy.
var ErrPolicyIsNotConstructed = errors.New("Policy must be created via NewPolicy constructor")

// Policy bundles the business policy constants shared by the order state
// machine and the payment reconciliation engine. It is a value object injected
// at composition time; engine code never reads package-level mutable state.
type Policy struct { //nolint:recvcheck //using for validation
	dailyQuota      Money
	maxActiveOrders int
	defaultFee      Money
	averageSpeedKmh float64

	guard guard.ConstructorGuard
}

// NewPolicy creates a Policy after validating every constant.
// The daily quota and default fee must be positive amounts, the active-order
// cap must be at least 1 and the average speed strictly positive.
func NewPolicy(dailyQuota Money, maxActiveOrders int, defaultFee Money, averageSpeedKmh float64) (Policy, error) {
	policy := Policy{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		policy.setDailyQuota(dailyQuota),
		policy.setMaxActiveOrders(maxActiveOrders),
		policy.setDefaultFee(defaultFee),
		policy.setAverageSpeedKmh(averageSpeedKmh),
	); err != nil {
		return Policy{}, err
	}

	return policy, nil
}

// DefaultPolicy returns the policy with the platform's standard constants.
func DefaultPolicy() Policy {
	policy, err := NewPolicy(
		MustMoneyFromInt(PolicyDefaultDailyQuota),
		PolicyDefaultMaxActiveOrders,
		MustMoneyFromInt(PolicyDefaultFee),
		PolicyDefaultAverageSpeedKmh,
	)
	if err != nil {
		panic(err)
	}
	return policy
}

// Validate ensures the Policy was created through NewPolicy.
func (p Policy) Validate() error {
	return p.guard.Validate(ErrPolicyIsNotConstructed)
}

// DailyQuota returns the fixed daily amount a courier owes.
func (p Policy) DailyQuota() Money {
	return p.dailyQuota
}

// MaxActiveOrders returns the concurrency cap on active orders per courier.
func (p Policy) MaxActiveOrders() int {
	return p.maxActiveOrders
}

// DefaultFee returns the default order fee.
func (p Policy) DefaultFee() Money {
	return p.defaultFee
}

// AverageSpeedKmh returns the assumed courier speed for ETA estimates.
func (p Policy) AverageSpeedKmh() float64 {
	return p.averageSpeedKmh
}

func (p *Policy) setDailyQuota(quota Money) error {
	if !quota.IsPositive() {
		return errs.NewValueIsRequiredError("daily quota")
	}
	p.dailyQuota = quota
	return nil
}

func (p *Policy) setMaxActiveOrders(capValue int) error {
	if capValue < 1 {
		return errs.NewValueIsOutOfRangeError("max active orders", capValue, 1, "+inf")
	}
	p.maxActiveOrders = capValue
	return nil
}

func (p *Policy) setDefaultFee(fee Money) error {
	if !fee.IsPositive() {
		return errs.NewValueIsRequiredError("default fee")
	}
	p.defaultFee = fee
	return nil
}

func (p *Policy) setAverageSpeedKmh(speed float64) error {
	if speed <= 0 {
		return errs.NewValueIsRequiredError("average speed")
	}
	p.averageSpeedKmh = speed
	return nil
}
