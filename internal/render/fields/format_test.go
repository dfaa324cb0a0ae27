package fields_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-compendium/internal/pkg/jsonv"
	"github.com/KirkDiggler/rpg-compendium/internal/render/fields"
)

type FormatTestSuite struct {
	suite.Suite
}

func TestFormatTestSuite(t *testing.T) {
	suite.Run(t, new(FormatTestSuite))
}

func (s *FormatTestSuite) TestShouldSkip() {
	for _, key := range []string{"url", "key", "resource", "document", "name"} {
		s.True(fields.ShouldSkip(key), key)
	}
	for _, key := range []string{"desc", "Name", "keys", ""} {
		s.False(fields.ShouldSkip(key), key)
	}
}

func (s *FormatTestSuite) TestIsEmpty() {
	s.True(fields.IsEmpty(nil))
	s.True(fields.IsEmpty(jsonv.Null{}))
	s.True(fields.IsEmpty(jsonv.String("")))
	s.True(fields.IsEmpty(jsonv.Array{}))

	s.False(fields.IsEmpty(jsonv.Number(0)))
	s.False(fields.IsEmpty(jsonv.Bool(false)))
	s.False(fields.IsEmpty(jsonv.String(" ")))
	s.False(fields.IsEmpty(jsonv.NewObject()))
}

func (s *FormatTestSuite) TestFormatLabel() {
	testCases := []struct {
		key      string
		expected string
	}{
		{key: "armor_class", expected: "Armor Class"},
		{key: "desc", expected: "Desc"},
		{key: "hit_dice", expected: "Hit Dice"},
		{key: "challenge_rating_text", expected: "Challenge Rating Text"},
		{key: "walk", expected: "Walk"},
		{key: "already_Upper", expected: "Already Upper"},
		{key: "élan_vital", expected: "Élan Vital"},
		{key: "2nd_level", expected: "2nd Level"},
		{key: "1st_level_slots", expected: "1st Level Slots"},
		{key: "hit-points", expected: "Hit-Points"},
	}

	for _, tc := range testCases {
		s.Run(tc.key, func() {
			s.Equal(tc.expected, fields.FormatLabel(tc.key))
		})
	}
}

func (s *FormatTestSuite) TestFormatLabel_Concurrent() {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(s.T(), "Armor Class", fields.FormatLabel("armor_class"))
		}()
	}
	wg.Wait()
}

func (s *FormatTestSuite) TestSortKeys_PriorityThenAlphabetical() {
	s.Equal(
		[]string{"desc", "level", "alpha", "zeta"},
		fields.SortKeys([]string{"zeta", "desc", "alpha", "level"}),
	)
	s.Equal(
		[]string{"type", "school", "armor_class", "traits", "actions", "bravo", "charlie"},
		fields.SortKeys([]string{"charlie", "actions", "traits", "bravo", "armor_class", "school", "type"}),
	)
}

func (s *FormatTestSuite) TestSortFields_DoesNotMutateInput() {
	members := []jsonv.Member{
		{Key: "zeta", Value: jsonv.Number(1)},
		{Key: "desc", Value: jsonv.String("d")},
	}

	sorted := fields.SortFields(members)

	s.Equal("desc", sorted[0].Key)
	s.Equal("zeta", members[0].Key)
}

func (s *FormatTestSuite) TestCollect() {
	obj, err := jsonv.ParseObject([]byte(`{
		"name": "X",
		"key": "x",
		"url": "/x",
		"zeta": 1,
		"empty": "",
		"none": null,
		"list": [],
		"level": 2,
		"desc": "short"
	}`))
	s.Require().NoError(err)

	got := fields.Collect(obj)

	s.Require().Len(got, 3)
	s.Equal(fields.Field{Key: "desc", Value: jsonv.String("short"), Shape: fields.ShapeScalar}, got[0])
	s.Equal(fields.Field{Key: "level", Value: jsonv.Number(2), Shape: fields.ShapeScalar}, got[1])
	s.Equal(fields.Field{Key: "zeta", Value: jsonv.Number(1), Shape: fields.ShapeScalar}, got[2])
}

func (s *FormatTestSuite) TestCollect_NilObject() {
	s.Empty(fields.Collect(nil))
}
