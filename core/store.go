package core

import (
	"encoding/json"
	"fmt"
)

// Store keys, one per entity collection. Each collection persists
// independently; there is no cross-key transaction.
const (
	KeyTeacherName  = "tms_teacherName"
	KeyTeacherClass = "tms_teacherClass"
	KeyTasks        = "tms_tasks"
	KeyLeaves       = "tms_leaves"
	KeyContacts     = "tms_contacts"
	KeySubjects     = "tms_subjects"
	KeyStudentMarks = "tms_studentMarks"
	KeyTimetable    = "tms_timetable"
	KeyDocuments    = "tms_documents"
	KeyStudents     = "tms_students"
)

// Store is durable keyed storage of raw JSON payloads.
type Store interface {
	// Get returns the stored payload for key; ok is false when nothing has
	// ever been stored under it.
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
	Close() error
}

// LoadJSON reads and decodes the collection stored under key. It fails
// closed: a read error, an absent key or a corrupt payload all yield def,
// with failures logged rather than propagated.
func LoadJSON[T any](s Store, log Logger, key string, def T) T {
	raw, ok, err := s.Get(key)
	if err != nil {
		log.Error(fmt.Sprintf("store: reading %q: %v", key, err), err)
		return def
	}
	if !ok {
		return def
	}
	var val T
	if err := json.Unmarshal(raw, &val); err != nil {
		log.Error(fmt.Sprintf("store: corrupt payload under %q: %v", key, err), err)
		return def
	}
	return val
}

// SaveJSON encodes v and writes it under key. Write failures are logged and
// swallowed: in-memory state stays authoritative until the next successful
// write.
func SaveJSON(s Store, log Logger, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Error(fmt.Sprintf("store: encoding %q: %v", key, err), err)
		return
	}
	if err := s.Put(key, raw); err != nil {
		log.Error(fmt.Sprintf("store: writing %q: %v", key, err), err)
	}
}
