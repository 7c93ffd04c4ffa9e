package stores

import "sync"

// LocationStore holds the selected delivery area used to scope catalog
// views. ID and name are set and cleared together; the store itself does not
// validate against the known-areas list.
type LocationStore struct {
	mu       sync.Mutex
	areaID   string
	areaName string
}

func NewLocationStore() *LocationStore {
	return &LocationStore{}
}

// SetSelectedArea sets both fields atomically. Empty strings clear the
// selection.
func (s *LocationStore) SetSelectedArea(areaID, areaName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.areaID = areaID
	s.areaName = areaName
}

func (s *LocationStore) Selected() (areaID, areaName string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.areaID, s.areaName, s.areaID != ""
}
