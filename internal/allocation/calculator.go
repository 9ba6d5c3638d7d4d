package allocation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Method is the way the price of an offering is distributed.
//
// swagger:enum Method
type Method string

const (
	MethodEqual    Method = "equal"
	MethodWeighted Method = "weighted"
	MethodManual   Method = "manual"
)

// Share is the calculated part of the total for one participant.
type Share struct {
	ParticipantID uuid.UUID
	Amount        int64
	Ratio         float64
}

// Calculate distributes total across the participants.
//
// The order of participants is significant: for equal splits, the
// remainder goes to the first participants, one unit each.
func Calculate(total int64, participants []uuid.UUID, method Method, manualAmounts []int64) ([]Share, error) {
	if total < 0 {
		return nil, ErrNegativeTotal
	}

	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	seen := make(map[uuid.UUID]struct{}, len(participants))
	for _, id := range participants {
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateParticipant, id)
		}
		seen[id] = struct{}{}
	}

	var amounts []int64
	switch method {
	// weighted has no weighting contract yet and is split equally
	case MethodEqual, MethodWeighted:
		amounts = equalAmounts(total, len(participants))
	case MethodManual:
		var err error
		amounts, err = manual(total, len(participants), manualAmounts)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, method)
	}

	shares := make([]Share, 0, len(participants))
	for i, id := range participants {
		shares = append(shares, Share{
			ParticipantID: id,
			Amount:        amounts[i],
			Ratio:         ratio(amounts[i], total, len(participants)),
		})
	}

	return shares, nil
}

// equalAmounts splits total into n parts that differ by at most one unit.
func equalAmounts(total int64, n int) []int64 {
	base := total / int64(n)
	remainder := total % int64(n)

	amounts := make([]int64, n)
	for i := range amounts {
		amounts[i] = base
		if int64(i) < remainder {
			amounts[i]++
		}
	}

	return amounts
}

func manual(total int64, n int, manualAmounts []int64) ([]int64, error) {
	if len(manualAmounts) != n {
		return nil, fmt.Errorf("%w: %d manual amounts given for %d participants", ErrValidation, len(manualAmounts), n)
	}

	var sum int64
	for _, a := range manualAmounts {
		if a < 0 {
			return nil, fmt.Errorf("%w: manual amounts must not be negative, got %d", ErrValidation, a)
		}

		// Stop before the sum passes the total, it cannot overflow then
		if a > total-sum {
			return nil, fmt.Errorf("%w: the manual amounts exceed the offering price (%d)", ErrValidation, total)
		}
		sum += a
	}

	if sum != total {
		return nil, fmt.Errorf("%w: the sum of the manual amounts (%d) does not match the offering price (%d)", ErrValidation, sum, total)
	}

	amounts := make([]int64, n)
	copy(amounts, manualAmounts)
	return amounts, nil
}

// ratio is amount / total. A total of zero is distributed evenly
// so that the ratios still sum up to one.
func ratio(amount, total int64, n int) float64 {
	if total == 0 {
		return decimal.NewFromInt(1).DivRound(decimal.NewFromInt(int64(n)), 8).InexactFloat64()
	}

	return decimal.NewFromInt(amount).DivRound(decimal.NewFromInt(total), 8).InexactFloat64()
}
