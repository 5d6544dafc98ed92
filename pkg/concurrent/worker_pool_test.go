package concurrent

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	testCases := []struct {
		name       string
		numWorkers int
		jobs       []int
		expected   []int
	}{
		{name: "single worker", numWorkers: 1, jobs: []int{1, 2, 3}, expected: []int{1, 4, 9}},
		{name: "more workers than jobs", numWorkers: 8, jobs: []int{4, 5}, expected: []int{16, 25}},
		{name: "no jobs", numWorkers: 4, jobs: []int{}, expected: []int{}},
		{name: "non positive workers", numWorkers: 0, jobs: []int{3}, expected: []int{9}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			results := Run(tt.numWorkers, tt.jobs, func(job int) int {
				return job * job
			})
			sort.Ints(results)
			assert.Equal(t, tt.expected, results)
		})
	}
}
