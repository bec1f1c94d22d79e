package api

import "sync"

// ReportStore keeps the most recent reports in memory, evicting the oldest
// once capacity is reached.
type ReportStore struct {
	mu      sync.Mutex
	cap     int
	order   []string
	reports map[string]*Report
}

const defaultStoreCapacity = 256

func NewReportStore(capacity int) *ReportStore {
	if capacity <= 0 {
		capacity = defaultStoreCapacity
	}
	return &ReportStore{
		cap:     capacity,
		reports: make(map[string]*Report, capacity),
	}
}

func (s *ReportStore) Put(r *Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[r.ID]; !ok {
		s.order = append(s.order, r.ID)
	}
	s.reports[r.ID] = r
	for len(s.order) > s.cap {
		delete(s.reports, s.order[0])
		s.order = s.order[1:]
	}
}

func (s *ReportStore) Get(id string) (*Report, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reports[id]
	return r, ok
}

func (s *ReportStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return false
	}
	delete(s.reports, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *ReportStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reports)
}
