package game

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// SaveRecord is the persisted slice of a session: exactly the three
// counters the save format carries, nothing else.
type SaveRecord struct {
	Stock    int
	Donation int
	Deadline int
}

// ErrNoSave is returned by Load when no record has been written yet.
var ErrNoSave = errors.New("no save record")

// Storage keys within the gdata container.
const (
	saveObject   = "saves"
	saveProperty = "counters"
)

// SaveManager persists the counter record through gdata, which picks a
// writable per-user location on every platform. Saving replaces the
// whole record; loading overwrites exactly the three counters.
//
// A nil gdata manager puts the SaveManager into degraded mode: saves
// are dropped and loads report ErrNoSave, so a broken storage location
// never blocks play.
type SaveManager struct {
	gdataManager *gdata.Manager
}

// NewSaveManager opens the gdata container for the given application
// name. The returned SaveManager is usable even when opening fails; it
// just cannot persist.
func NewSaveManager(appName string) *SaveManager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Save] Warning: save storage unavailable: %v", err)
		return &SaveManager{gdataManager: nil}
	}
	return &SaveManager{gdataManager: m}
}

// Save writes the record, replacing any previous one.
func (sm *SaveManager) Save(record SaveRecord) error {
	if sm.gdataManager == nil {
		return nil
	}
	data := EncodeSaveRecord(record)
	if err := sm.gdataManager.SaveObjectProp(saveObject, saveProperty, data); err != nil {
		return fmt.Errorf("failed to write save record: %w", err)
	}
	log.Printf("[Save] Saved stock=%d donation=%d deadline=%d",
		record.Stock, record.Donation, record.Deadline)
	return nil
}

// Load reads the record back. ErrNoSave means nothing was saved yet.
func (sm *SaveManager) Load() (SaveRecord, error) {
	if sm.gdataManager == nil {
		return SaveRecord{}, ErrNoSave
	}
	if !sm.gdataManager.ObjectPropExists(saveObject, saveProperty) {
		return SaveRecord{}, ErrNoSave
	}
	data, err := sm.gdataManager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return SaveRecord{}, fmt.Errorf("failed to read save record: %w", err)
	}
	return ParseSaveRecord(data)
}

// EncodeSaveRecord renders the record in the save format: three
// newline-separated integers, in order stock, donation, deadline.
func EncodeSaveRecord(record SaveRecord) []byte {
	return []byte(fmt.Sprintf("%d\n%d\n%d\n", record.Stock, record.Donation, record.Deadline))
}

// ParseSaveRecord parses the three-line save format.
func ParseSaveRecord(data []byte) (SaveRecord, error) {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		return SaveRecord{}, fmt.Errorf("save record has %d lines, expected 3", len(lines))
	}
	values := make([]int, 3)
	for i, line := range lines {
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return SaveRecord{}, fmt.Errorf("save record line %d: %w", i+1, err)
		}
		values[i] = v
	}
	return SaveRecord{Stock: values[0], Donation: values[1], Deadline: values[2]}, nil
}
