package trivia

import (
	"sort"
	"strings"
	"sync"

	"trivia-app/internal/opentdb"
)

// Category is a trivia topic with the number of questions OpenTDB holds for
// it per difficulty. Counts stay zero until a count fetch succeeds, so zero
// means "unknown" as much as "empty".
type Category struct {
	ID          int
	Name        string
	TotalCount  int
	EasyCount   int
	MediumCount int
	HardCount   int
}

func (c *Category) String() string {
	return c.Name
}

// Equal compares identity only.
func (c *Category) Equal(other *Category) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID == other.ID
}

// CountFor returns the available question count for a difficulty.
func (c *Category) CountFor(d Difficulty) int {
	switch d {
	case Easy:
		return c.EasyCount
	case Hard:
		return c.HardCount
	default:
		return c.MediumCount
	}
}

func (c *Category) applyCount(count opentdb.RawCategoryCount) {
	c.TotalCount = nonNegative(count.Total)
	c.EasyCount = nonNegative(count.Easy)
	c.MediumCount = nonNegative(count.Medium)
	c.HardCount = nonNegative(count.Hard)
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// CategorySet holds categories keyed by id. The first category added for an
// id wins.
type CategorySet struct {
	mu    sync.RWMutex
	byID  map[int]*Category
	order []int
}

func NewCategorySet() *CategorySet {
	return &CategorySet{byID: make(map[int]*Category)}
}

// Add stores c unless a category with the same id is already present and
// reports whether it was stored.
func (s *CategorySet) Add(c *Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[c.ID]; exists {
		return false
	}
	s.byID[c.ID] = c
	s.order = append(s.order, c.ID)
	return true
}

func (s *CategorySet) Get(id int) (*Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	return c, ok
}

func (s *CategorySet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// All returns the categories in insertion order.
func (s *CategorySet) All() []*Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Category, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Sorted returns the categories ordered by name, then id.
func (s *CategorySet) Sorted() []*Category {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if a != b {
			return a < b
		}
		return out[i].ID < out[j].ID
	})
	return out
}
