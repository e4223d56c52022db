package tinylfu

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type SLRUSuite struct {
	suite.Suite
	slru *slru[int, string]
}

func TestSLRUSuite(t *testing.T) {
	suite.Run(t, new(SLRUSuite))
}

func (suite *SLRUSuite) SetupTest() {
	suite.slru = newSLRU[int, string](2, 2)
}

func (suite *SLRUSuite) TestNewEntersProbationary() {
	suite.slru.Put(1, "one")

	suite.Assert().True(suite.slru.probationary.Contains(1))
	suite.Assert().False(suite.slru.protected.Contains(1))
	suite.Assert().Equal(1, suite.slru.Len())
	suite.Assert().Equal(4, suite.slru.Cap())
}

func (suite *SLRUSuite) TestGetOnProbationaryPromotesToProtected() {
	suite.slru.Put(1, "one")

	v, ok := suite.slru.Get(1)
	suite.Assert().True(ok)
	suite.Assert().Equal("one", v)

	suite.Assert().False(suite.slru.probationary.Contains(1))
	suite.Assert().True(suite.slru.protected.Contains(1))
}

func (suite *SLRUSuite) TestGetOnProtectedStaysInProtected() {
	suite.slru.Put(1, "one")
	suite.slru.Get(1) // promotes to protected

	v, ok := suite.slru.Get(1)
	suite.Assert().True(ok)
	suite.Assert().Equal("one", v)
	suite.Assert().True(suite.slru.protected.Contains(1))
}

func (suite *SLRUSuite) TestGetMiss() {
	_, ok := suite.slru.Get(99)
	suite.Assert().False(ok)
}

func (suite *SLRUSuite) TestPromotionDemotesProtectedLRUBackToProbationary() {
	s := newSLRU[int, string](2, 1)

	s.Put(1, "one")
	s.Get(1) // 1: probationary -> protected (protected now full)

	s.Put(2, "two")
	s.Get(2) // 2 promotes, protected overflows, demotes 1 back to probationary

	suite.Assert().True(s.probationary.Contains(1))
	suite.Assert().True(s.protected.Contains(2))
	suite.Assert().False(s.protected.Contains(1))
}

// The key being promoted is always popped out of probationary before the
// protected segment's demoted victim is pushed back in, so that push-back
// always has the one slot it vacated and the cascade never actually loses
// an entry — true at any probationary capacity, not just this one. This
// mirrors the source's own pop-then-push shape (src/slru.rs get()), where
// the same holds. The drop branch in slru.Get exists because it is
// literally what the source does, not because it is reachable; see
// DESIGN.md's open-question note on this.
func (suite *SLRUSuite) TestPromotionCascadeNeverLosesAnEntry() {
	s := newSLRU[int, string](2, 1)

	s.Put(1, "one")
	s.Get(1) // 1: probationary -> protected (protected now full)
	s.Put(2, "two")
	s.Put(3, "three") // probationary now holds {2, 3}, full

	s.Get(3) // 3 promotes; protected demotes 1; probationary has room (3's
	// own slot is free) and takes 1 back — nothing is dropped.

	suite.Assert().True(s.protected.Contains(3))
	suite.Assert().True(s.probationary.Contains(2))
	suite.Assert().True(s.probationary.Contains(1))
	suite.Assert().Equal(3, s.Len())
}

func (suite *SLRUSuite) TestPutUpdatesInPlaceWithoutMovingSegments() {
	suite.slru.Put(1, "one")
	suite.slru.Get(1) // promote to protected

	old, existed := suite.slru.Put(1, "uno")
	suite.Assert().True(existed)
	suite.Assert().Equal("one", old)
	suite.Assert().True(suite.slru.protected.Contains(1))
}

func (suite *SLRUSuite) TestPushSurfacesProbationaryEviction() {
	s := newSLRU[int, string](1, 1)

	s.Put(1, "one")

	evKey, evValue, evicted := s.Push(2, "two")
	suite.Assert().True(evicted)
	suite.Assert().Equal(1, evKey)
	suite.Assert().Equal("one", evValue)
}

func (suite *SLRUSuite) TestPeekLRUIfFull() {
	s := newSLRU[int, string](1, 1)

	_, _, ok := s.PeekLRUIfFull()
	suite.Assert().False(ok)

	s.Put(1, "one")

	k, v, ok := s.PeekLRUIfFull()
	suite.Assert().True(ok)
	suite.Assert().Equal(1, k)
	suite.Assert().Equal("one", v)
}

func (suite *SLRUSuite) TestPeekLRUPrefersProbationary() {
	s := newSLRU[int, string](2, 2)
	s.Put(1, "one")
	s.Get(1) // protected
	s.Put(2, "two")

	k, _, ok := s.PeekLRU()
	suite.Assert().True(ok)
	suite.Assert().Equal(2, k)
}

func (suite *SLRUSuite) TestPopAndPopEntryAndPopLRU() {
	suite.slru.Put(1, "one")
	suite.slru.Put(2, "two")
	suite.slru.Get(1) // protected

	v, ok := suite.slru.Pop(1)
	suite.Assert().True(ok)
	suite.Assert().Equal("one", v)

	k, v, ok := suite.slru.PopEntry(2)
	suite.Assert().True(ok)
	suite.Assert().Equal(2, k)
	suite.Assert().Equal("two", v)

	suite.Assert().Equal(0, suite.slru.Len())

	suite.slru.Put(3, "three")
	k, v, ok = suite.slru.PopLRU()
	suite.Assert().True(ok)
	suite.Assert().Equal(3, k)
	suite.Assert().Equal("three", v)
}

func (suite *SLRUSuite) TestResize() {
	suite.slru.Resize(1, 1)
	suite.Assert().Equal(2, suite.slru.Cap())
}

func (suite *SLRUSuite) TestClear() {
	suite.slru.Put(1, "one")
	suite.slru.Get(1)
	suite.slru.Put(2, "two")

	suite.slru.Clear()

	suite.Assert().Equal(0, suite.slru.Len())
	suite.Assert().False(suite.slru.Contains(1))
	suite.Assert().False(suite.slru.Contains(2))
}

func (suite *SLRUSuite) TestEachProbationaryThenProtected() {
	s := newSLRU[int, string](2, 2)
	s.Put(1, "one")
	s.Get(1) // protected
	s.Put(2, "two")

	var visited []int
	s.Each(func(k int, v string) bool {
		visited = append(visited, k)
		return true
	})

	suite.Assert().Equal([]int{2, 1}, visited)
}

func (suite *SLRUSuite) TestSegmentsAreDisjoint() {
	suite.slru.Put(1, "one")
	suite.slru.Get(1) // protected

	suite.Assert().False(suite.slru.probationary.Contains(1))
	suite.Assert().True(suite.slru.protected.Contains(1))
}
