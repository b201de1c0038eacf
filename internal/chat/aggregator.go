// Package chat folds raw chat documents into one thread per student and
// course.
package chat

import (
	"sort"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
)

// Thread is the merged view of every chat document sharing a student and a
// course.
type Thread struct {
	Key       string           `json:"key"`
	Student   domain.Ref       `json:"student"`
	Course    domain.Ref       `json:"course"`
	Messages  []domain.Message `json:"messages"`
	SourceIDs []string         `json:"sourceIds"`
}

func (t Thread) LastMessage() (domain.Message, bool) {
	if len(t.Messages) == 0 {
		return domain.Message{}, false
	}
	return t.Messages[len(t.Messages)-1], true
}

func Key(studentID, courseID string) string {
	return studentID + "-" + courseID
}

// Group merges chats by student and course. Threads keep the order in which
// their key was first seen. Messages with an id already present in the
// thread are dropped. When every message in a thread carries a timestamp
// they are ordered by it, ties keeping arrival order; otherwise arrival
// order is kept as is.
func Group(chats []domain.Chat) []Thread {
	index := make(map[string]int)
	threads := make([]Thread, 0, len(chats))
	seen := make(map[string]map[string]struct{})

	for _, c := range chats {
		key := Key(c.Student.ID, c.Course.ID)
		i, ok := index[key]
		if !ok {
			i = len(threads)
			index[key] = i
			seen[key] = make(map[string]struct{})
			threads = append(threads, Thread{
				Key:      key,
				Student:  c.Student,
				Course:   c.Course,
				Messages: []domain.Message{},
			})
		}

		t := &threads[i]
		if c.ID != "" {
			t.SourceIDs = append(t.SourceIDs, c.ID)
		}
		if t.Student.Name == "" && c.Student.Name != "" {
			t.Student = c.Student
		}
		if t.Course.Name == "" && c.Course.Name != "" {
			t.Course = c.Course
		}

		for _, m := range c.Messages {
			if m.ID != "" {
				if _, dup := seen[key][m.ID]; dup {
					continue
				}
				seen[key][m.ID] = struct{}{}
			}
			t.Messages = append(t.Messages, m)
		}
	}

	for i := range threads {
		orderByTime(threads[i].Messages)
	}
	return threads
}

func orderByTime(messages []domain.Message) {
	for _, m := range messages {
		if m.At().IsZero() {
			return
		}
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].At().Before(messages[j].At())
	})
}

// ForCourse keeps the threads that belong to courseID.
func ForCourse(threads []Thread, courseID string) []Thread {
	out := make([]Thread, 0, len(threads))
	for _, t := range threads {
		if t.Course.ID == courseID {
			out = append(out, t)
		}
	}
	return out
}

func Find(threads []Thread, key string) (Thread, bool) {
	for _, t := range threads {
		if t.Key == key {
			return t, true
		}
	}
	return Thread{}, false
}
