// Package epoch converts between slots and epochs of a cluster.
package epoch

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

const (
	// MinimumSlotsPerEpoch is the length of the first warmup epoch.
	MinimumSlotsPerEpoch uint64 = 32
	// DefaultSlotsPerEpoch is the epoch length of production clusters.
	DefaultSlotsPerEpoch uint64 = 432_000
)

var (
	// ErrSlotsPerEpochTooSmall is returned for schedules shorter than MinimumSlotsPerEpoch.
	ErrSlotsPerEpochTooSmall = errors.New("slots per epoch below minimum")
	// ErrSlotsPerEpochTooLarge is returned for warmup schedules whose epoch
	// length cannot be rounded up to a power of two.
	ErrSlotsPerEpochTooLarge = errors.New("slots per epoch above warmup maximum")
)

// maxWarmupSlotsPerEpoch is the largest power of two representable in a uint64.
const maxWarmupSlotsPerEpoch uint64 = 1 << 63

var minimumShift = bits.TrailingZeros64(MinimumSlotsPerEpoch)

// Schedule describes the epoch layout of a cluster. With warmup enabled the
// epochs start at MinimumSlotsPerEpoch slots and double until they reach
// SlotsPerEpoch.
type Schedule struct {
	SlotsPerEpoch            uint64
	LeaderScheduleSlotOffset uint64
	Warmup                   bool
	FirstNormalEpoch         uint64
	FirstNormalSlot          uint64
}

// New builds a schedule.
func New(slotsPerEpoch, leaderScheduleSlotOffset uint64, warmup bool) (Schedule, error) {
	if slotsPerEpoch < MinimumSlotsPerEpoch {
		return Schedule{}, fmt.Errorf("%w: %d < %d", ErrSlotsPerEpochTooSmall, slotsPerEpoch, MinimumSlotsPerEpoch)
	}
	if warmup && slotsPerEpoch > maxWarmupSlotsPerEpoch {
		return Schedule{}, fmt.Errorf("%w: %d", ErrSlotsPerEpochTooLarge, slotsPerEpoch)
	}
	s := Schedule{
		SlotsPerEpoch:            slotsPerEpoch,
		LeaderScheduleSlotOffset: leaderScheduleSlotOffset,
		Warmup:                   warmup,
	}
	if warmup {
		next := nextPowerOfTwo(slotsPerEpoch)
		s.FirstNormalEpoch = uint64(bits.TrailingZeros64(next) - minimumShift)
		s.FirstNormalSlot = next - MinimumSlotsPerEpoch
	}
	return s, nil
}

// Default returns the production schedule with warmup.
func Default() Schedule {
	s, _ := New(DefaultSlotsPerEpoch, DefaultSlotsPerEpoch, true)
	return s
}

// WithoutWarmup returns a schedule in which every epoch has slotsPerEpoch slots.
func WithoutWarmup(slotsPerEpoch uint64) (Schedule, error) {
	return New(slotsPerEpoch, slotsPerEpoch, false)
}

// Epoch returns the epoch containing slot.
func (s Schedule) Epoch(slot uint64) uint64 {
	epoch, _ := s.EpochAndSlotIndex(slot)
	return epoch
}

// EpochAndSlotIndex returns the epoch containing slot and the offset of slot within it.
func (s Schedule) EpochAndSlotIndex(slot uint64) (uint64, uint64) {
	if slot < s.FirstNormalSlot {
		epoch := bits.TrailingZeros64(nextPowerOfTwo(saturatingAdd(slot, MinimumSlotsPerEpoch+1))) - minimumShift - 1
		epochLen := uint64(1) << (epoch + minimumShift)
		return uint64(epoch), slot - (epochLen - MinimumSlotsPerEpoch)
	}
	normalSlotIndex := slot - s.FirstNormalSlot
	return s.FirstNormalEpoch + normalSlotIndex/s.SlotsPerEpoch, normalSlotIndex % s.SlotsPerEpoch
}

// SlotsInEpoch returns the number of slots in epoch.
func (s Schedule) SlotsInEpoch(epoch uint64) uint64 {
	if epoch < s.FirstNormalEpoch {
		return uint64(1) << (epoch + uint64(minimumShift))
	}
	return s.SlotsPerEpoch
}

// FirstSlotInEpoch returns the first slot of epoch.
func (s Schedule) FirstSlotInEpoch(epoch uint64) uint64 {
	if epoch <= s.FirstNormalEpoch {
		return ((uint64(1) << epoch) - 1) * MinimumSlotsPerEpoch
	}
	return saturatingAdd(saturatingMul(epoch-s.FirstNormalEpoch, s.SlotsPerEpoch), s.FirstNormalSlot)
}

// LastSlotInEpoch returns the last slot of epoch.
func (s Schedule) LastSlotInEpoch(epoch uint64) uint64 {
	return s.FirstSlotInEpoch(epoch) + s.SlotsInEpoch(epoch) - 1
}

// LeaderScheduleEpoch returns the epoch whose leader schedule is computed at slot.
func (s Schedule) LeaderScheduleEpoch(slot uint64) uint64 {
	if slot < s.FirstNormalSlot {
		return s.Epoch(slot) + 1
	}
	newSlotsSinceFirstNormal := saturatingAdd(slot-s.FirstNormalSlot, s.LeaderScheduleSlotOffset)
	return s.FirstNormalEpoch + newSlotsSinceFirstNormal/s.SlotsPerEpoch
}

func nextPowerOfTwo(v uint64) uint64 {
	if v <= 1 {
		return 1
	}
	shift := bits.Len64(v - 1)
	if shift >= 64 {
		return math.MaxUint64
	}
	return uint64(1) << shift
}

func saturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

func saturatingMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
