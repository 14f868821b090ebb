package storage

import (
	"encoding/json"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/onu-facilities/parts-tracker/pkg/logger"
)

// Collection names. Unknown names still work (the store creates collections
// on demand); these exist so repos and seeds agree on spelling.
const (
	CollectionUsers            = "users"
	CollectionParts            = "parts"
	CollectionBuildings        = "buildings"
	CollectionCostCenters      = "costCenters"
	CollectionStaffMembers     = "staffMembers"
	CollectionIssuances        = "partsIssuance"
	CollectionDeliveries       = "partsDelivery"
	CollectionStorageLocations = "storageLocations"
	CollectionShelves          = "shelves"
	CollectionTools            = "tools"
	CollectionToolSignouts     = "toolSignouts"
	CollectionPartsPickup      = "partsPickup"
	CollectionPartsToCount     = "partsToCount"
	CollectionDeliveryRequests = "deliveryRequests"
	CollectionDeliveryReqItems = "deliveryRequestItems"
)

// snapshot is the whole durable image: every collection plus the session map.
type snapshot struct {
	Collections map[string][]Record `json:"collections"`
	Sessions    map[string]Record   `json:"sessions"`
}

// Store is the generic record store: named collections of JSON-shaped
// records with auto-increment integer ids, backed by whole-snapshot
// persistence. The in-memory image is authoritative; persistence failures
// are logged and never surfaced to callers.
type Store struct {
	mu       sync.RWMutex
	data     map[string][]Record
	sessions map[string]Record
	backend  Backend
	log      *logger.Logger
}

// NewStore loads the snapshot from the backend, falling back to the seeded
// default dataset when the snapshot is missing or unreadable.
func NewStore(backend Backend, log *logger.Logger) *Store {
	s := &Store{backend: backend, log: log}

	raw, err := backend.Load()
	if err != nil {
		log.Warn().Err(err).Msg("snapshot load failed, starting from defaults")
	}
	if len(raw) > 0 {
		var snap snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			log.Warn().Err(err).Msg("snapshot corrupt, starting from defaults")
		} else {
			s.data = snap.Collections
			s.sessions = snap.Sessions
		}
	}
	if s.data == nil {
		s.data = map[string][]Record{}
	}
	if s.sessions == nil {
		s.sessions = map[string]Record{}
	}
	// Loaded collections win; seeds only fill the ones that are absent,
	// so an operator emptying a collection stays emptied.
	for name, records := range defaultDataset() {
		if _, ok := s.data[name]; !ok {
			s.data[name] = records
		}
	}
	return s
}

// GetAll returns every record in the collection, empty for unknown names.
func (s *Store) GetAll(collection string) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.data[collection])
}

// GetByID returns the first record whose id loosely equals the given id,
// or nil when absent.
func (s *Store) GetByID(collection string, id any) Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.data[collection] {
		if looseEqual(rec["id"], id) {
			return cloneRecord(rec)
		}
	}
	return nil
}

// Insert appends a record, assigning max(existing ids, 0)+1 when the record
// carries no id, then persists the snapshot. Returns the stored record.
func (s *Store) Insert(collection string, rec Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneRecord(rec)
	if _, ok := recordID(stored); !ok {
		stored["id"] = s.nextIDLocked(collection)
	}
	s.data[collection] = append(s.data[collection], stored)
	s.persistLocked()
	return cloneRecord(stored)
}

// Update shallow-merges fields over the record with the given id and
// persists. Returns nil when no record matches; the collection is untouched.
func (s *Store) Update(collection string, id any, fields Record) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.data[collection]
	for i, rec := range records {
		if !looseEqual(rec["id"], id) {
			continue
		}
		merged := cloneRecord(rec)
		for k, v := range fields {
			merged[k] = v
		}
		records[i] = merged
		s.persistLocked()
		return cloneRecord(merged)
	}
	return nil
}

// Delete removes the first record matching id, persisting when something
// was removed. Reports whether a removal happened.
func (s *Store) Delete(collection string, id any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.data[collection]
	for i, rec := range records {
		if looseEqual(rec["id"], id) {
			s.data[collection] = append(records[:i], records[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	return false
}

// Query returns the records matching every condition (implicit AND, full
// scan). String conditions containing '%' do case-insensitive substring
// matching; everything else is loose equality.
func (s *Store) Query(collection string, conditions map[string]any) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Record
	for _, rec := range s.data[collection] {
		if matchesConditions(rec, conditions) {
			out = append(out, cloneRecord(rec))
		}
	}
	return out
}

// GetSession returns the session record for the token, or nil.
func (s *Store) GetSession(token string) Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.sessions[token]
	if !ok {
		return nil
	}
	return cloneRecord(rec)
}

// SetSession stores session data under the token and persists.
func (s *Store) SetSession(token string, data Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = cloneRecord(data)
	s.persistLocked()
}

// DeleteSession removes the token's session and persists.
func (s *Store) DeleteSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	s.persistLocked()
}

// Close flushes nothing (every mutation already persisted) and closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// nextIDLocked allocates max(existing ids, 0) + 1. Caller holds the write
// lock, so concurrent inserts cannot observe the same max.
func (s *Store) nextIDLocked(collection string) int {
	maxID := 0
	for _, rec := range s.data[collection] {
		if f, ok := toFloat(rec["id"]); ok && int(f) > maxID {
			maxID = int(f)
		}
	}
	return maxID + 1
}

// persistLocked serializes the whole dataset through the backend. Failures
// are logged only; the in-memory state stays authoritative.
func (s *Store) persistLocked() {
	snap := snapshot{Collections: s.data, Sessions: s.sessions}
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		s.log.Error().Err(err).Msg("marshal snapshot")
		return
	}
	if err := s.backend.Save(raw); err != nil {
		s.log.Error().Err(err).Msg("save snapshot")
	}
}

func cloneRecord(rec Record) Record {
	if rec == nil {
		return nil
	}
	out := make(Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}

func cloneRecords(recs []Record) []Record {
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		out = append(out, cloneRecord(rec))
	}
	return out
}

// defaultDataset is the pre-seeded image used when no snapshot exists:
// one admin login plus the reference collections a fresh install needs.
func defaultDataset() map[string][]Record {
	return map[string][]Record{
		CollectionUsers: {
			{
				"id":           1,
				"username":     "admin",
				"passwordHash": seedHash("password123"),
				"name":         "System Administrator",
				"role":         "admin",
				"department":   "IT",
			},
		},
		CollectionParts: {},
		CollectionBuildings: {
			{"id": 1, "name": "Main Building", "description": "Primary administrative building", "active": true},
			{"id": 2, "name": "Engineering Building", "description": "Engineering and technical departments", "active": true},
			{"id": 3, "name": "Science Building", "description": "Science laboratories and classrooms", "active": true},
		},
		CollectionCostCenters: {
			{"id": 1, "code": "11000-12760", "name": "Maintenance Operations", "description": "General maintenance and operations", "active": true},
			{"id": 2, "code": "11000-12761", "name": "Engineering Services", "description": "Engineering department operations", "active": true},
			{"id": 3, "code": "11000-12762", "name": "Facilities Management", "description": "Facilities and grounds management", "active": true},
		},
		CollectionStaffMembers: {},
		CollectionIssuances:    {},
		CollectionDeliveries:   {},
		CollectionStorageLocations: {
			{"id": 1, "name": "Stockroom A", "description": "Main parts stockroom", "active": true},
			{"id": 2, "name": "Warehouse B", "description": "Secondary storage warehouse", "active": true},
			{"id": 3, "name": "Mobile Unit", "description": "Mobile storage for field work", "active": true},
		},
		CollectionShelves:          {},
		CollectionTools:            {},
		CollectionToolSignouts:     {},
		CollectionPartsPickup:      {},
		CollectionPartsToCount:     {},
		CollectionDeliveryRequests: {},
		CollectionDeliveryReqItems: {},
	}
}

func seedHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt only fails on absurd cost values; the seed uses the default.
		panic(err)
	}
	return string(hash)
}
