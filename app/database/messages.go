package database

import (
	"context"
	"sort"

	"github.com/devasathya74/pmsrbl/app/models"
	"github.com/devasathya74/pmsrbl/app/store"
)

const teacherReportType = "teacher_report"

// CreateContact stores a public contact-form message, unread.
func CreateContact(ctx context.Context, s store.Store, m *models.ContactMessage) (string, error) {
	m.Status = "new"
	m.Read = false
	m.CreatedAt = nowStamp()
	data, err := models.ToDoc(m)
	if err != nil {
		return "", err
	}
	return s.Add(ctx, ContactsCollection, data)
}

// ListContacts returns every contact message. Read-state filtering happens
// over the fetched set; these collections stay small enough that no
// server-side filtered query is worth the composite index.
func ListContacts(ctx context.Context, s store.Store) ([]*models.ContactMessage, error) {
	docs, err := s.List(ctx, ContactsCollection, store.Query{})
	if err != nil {
		return nil, err
	}
	msgs := make([]*models.ContactMessage, 0, len(docs))
	for _, doc := range docs {
		m, err := models.ContactFromDoc(doc)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].CreatedAt > msgs[j].CreatedAt })
	return msgs, nil
}

// FilterContactsByRead narrows a listing to read or unread messages.
func FilterContactsByRead(msgs []*models.ContactMessage, read bool) []*models.ContactMessage {
	out := make([]*models.ContactMessage, 0, len(msgs))
	for _, m := range msgs {
		if m.Read == read {
			out = append(out, m)
		}
	}
	return out
}

// MarkContactRead flips the read flag, the only state a message has.
func MarkContactRead(ctx context.Context, s store.Store, id string) error {
	return s.Update(ctx, ContactsCollection, id, map[string]interface{}{
		"read":      true,
		"updatedAt": nowStamp(),
	})
}

func DeleteContact(ctx context.Context, s store.Store, id string) error {
	return s.Delete(ctx, ContactsCollection, id)
}

// CreateTeacherReport files a teacher-to-admin report into the shared
// messages collection, tagged by type.
func CreateTeacherReport(ctx context.Context, s store.Store, r *models.TeacherReport) (string, error) {
	r.Type = teacherReportType
	r.Read = false
	r.Date = nowStamp()
	data, err := models.ToDoc(r)
	if err != nil {
		return "", err
	}
	return s.Add(ctx, MessagesCollection, data)
}

// ListTeacherReports returns reports newest first. The type filter is the
// one server-side equality query; ordering stays client-side to avoid a
// composite index.
func ListTeacherReports(ctx context.Context, s store.Store) ([]*models.TeacherReport, error) {
	docs, err := s.List(ctx, MessagesCollection, store.Query{
		Filters: []store.Filter{{Field: "type", Value: teacherReportType}},
	})
	if err != nil {
		return nil, err
	}
	reports := make([]*models.TeacherReport, 0, len(docs))
	for _, doc := range docs {
		r, err := models.ReportFromDoc(doc)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].Date > reports[j].Date })
	return reports, nil
}

func DeleteTeacherReport(ctx context.Context, s store.Store, id string) error {
	return s.Delete(ctx, MessagesCollection, id)
}

// CreateNotification publishes a site-wide announcement.
func CreateNotification(ctx context.Context, s store.Store, n *models.Notification) (string, error) {
	n.Active = true
	n.CreatedAt = nowStamp()
	data, err := models.ToDoc(n)
	if err != nil {
		return "", err
	}
	return s.Add(ctx, NotificationsCollection, data)
}

// ListNotifications returns announcements, optionally narrowed to the active
// ones the public site shows. Records written before the flag existed count
// as active.
func ListNotifications(ctx context.Context, s store.Store, activeOnly bool) ([]*models.Notification, error) {
	docs, err := s.List(ctx, NotificationsCollection, store.Query{})
	if err != nil {
		return nil, err
	}
	notifs := make([]*models.Notification, 0, len(docs))
	for _, doc := range docs {
		if activeOnly {
			if v, ok := doc.Data["active"].(bool); ok && !v {
				continue
			}
		}
		n, err := models.NotificationFromDoc(doc)
		if err != nil {
			return nil, err
		}
		notifs = append(notifs, n)
	}
	sort.Slice(notifs, func(i, j int) bool { return notifs[i].CreatedAt > notifs[j].CreatedAt })
	return notifs, nil
}

func DeleteNotification(ctx context.Context, s store.Store, id string) error {
	return s.Delete(ctx, NotificationsCollection, id)
}
