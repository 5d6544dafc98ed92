package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareRoadCategories(t *testing.T) {
	cases := []struct {
		from, to RoadCategory
		want     CategoryTransition
	}{
		{MOTORWAY, PRIMARY, WORSE_ROAD},
		{PRIMARY, MOTORWAY, BETTER_ROAD},
		{TERTIARY, UNCLASSIFIED, EQUAL_ROAD},
		{MOTORWAY_LINK, TRUNK_LINK, EQUAL_ROAD},
		{RESIDENTIAL, SERVICE, EQUAL_ROAD},
		{SECONDARY, RESIDENTIAL, WORSE_ROAD},
		{LIVING_STREET, TERTIARY, BETTER_ROAD},
	}

	for _, tc := range cases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, CompareRoadCategories(tc.from, tc.to))
		})
	}
}

func TestGetRoadCategory(t *testing.T) {
	for _, label := range []string{"motorway", "trunk_link", "residential", "living_street", "track"} {
		assert.Equal(t, label, GetRoadCategory(label).String())
	}
	assert.Equal(t, UNKNOWN, GetRoadCategory("footway"))
	assert.Equal(t, UNRANKED_CATEGORY, UNKNOWN.Rank())
}
