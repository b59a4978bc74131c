package misc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdat2/sithom/misc"
)

// TestHumanSize pins the rendering across the unit boundaries.
func TestHumanSize(t *testing.T) {
	cases := []struct {
		name string
		num  int64
		want string
	}{
		{"zero", 0, "0 B"},
		{"below_kilo", 1023, "1023 B"},
		{"exact_kilo", 1024, "1 KB"},
		{"megabyte_ish", 1_000_000, "977 KB"},
		{"five_gig", 5 * 1024 * 1024 * 1024, "5 GB"},
		{"big_dataset", 100_000_000_000_000, "91 TB"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, misc.HumanSize(tc.num))
		})
	}
}

// TestHumanSize_PanicsOnNegative treats a negative size as a caller bug.
func TestHumanSize_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { misc.HumanSize(-1) })
}

// TestGitRevision_OutsideRepo fails cleanly when dir is not a git
// working tree.
func TestGitRevision_OutsideRepo(t *testing.T) {
	_, err := misc.GitRevision(t.TempDir())
	assert.Error(t, err)
}
