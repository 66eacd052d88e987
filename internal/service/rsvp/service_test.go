package rsvp

import (
	"errors"
	"testing"

	"huddle_server/internal/dao/mysql/repository"
	"huddle_server/internal/dto/request"
	"huddle_server/internal/model"
	"huddle_server/pkg/enum/event/event_kind_enum"
	"huddle_server/pkg/enum/rsvp/rsvp_response_enum"
	"huddle_server/pkg/errorx"
)

// fakeRsvpRepo 内存 RSVP 桩，Upsert 以 (user, event, kind) 为键覆盖
type fakeRsvpRepo struct {
	records []model.Rsvp
}

func (f *fakeRsvpRepo) Upsert(rsvp *model.Rsvp) error {
	for i := range f.records {
		r := &f.records[i]
		if r.UserId == rsvp.UserId && r.EventId == rsvp.EventId && r.EventKind == rsvp.EventKind {
			r.Response = rsvp.Response
			return nil
		}
	}
	f.records = append(f.records, *rsvp)
	return nil
}
func (f *fakeRsvpRepo) FindByEvent(eventId string, eventKind int8) ([]model.Rsvp, error) {
	var out []model.Rsvp
	for _, r := range f.records {
		if r.EventId == eventId && r.EventKind == eventKind {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeRsvpRepo) FindByUserAndEvent(userId, eventId string, eventKind int8) (*model.Rsvp, error) {
	for i := range f.records {
		r := &f.records[i]
		if r.UserId == userId && r.EventId == eventId && r.EventKind == eventKind {
			return r, nil
		}
	}
	return nil, nil
}
func (f *fakeRsvpRepo) DeleteByEvent(eventId string, eventKind int8) error { return nil }

type fakeUserRepo struct{ users []model.UserInfo }

func (f *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
}
func (f *fakeUserRepo) FindByTelephone(telephone string) (*model.UserInfo, error) {
	return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
}
func (f *fakeUserRepo) FindByHandle(handle string) (*model.UserInfo, error) {
	return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
}
func (f *fakeUserRepo) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	var out []model.UserInfo
	for _, u := range f.users {
		for _, id := range uuids {
			if u.Uuid == id {
				out = append(out, u)
			}
		}
	}
	return out, nil
}
func (f *fakeUserRepo) Create(user *model.UserInfo) error { return nil }
func (f *fakeUserRepo) Update(user *model.UserInfo) error { return nil }

// stubAccess 只允许白名单里的事件
type stubAccess struct {
	visible map[string]bool
}

func (s stubAccess) CheckEventAccess(viewerId, eventId string, eventKind int8) error {
	if s.visible[eventId] {
		return nil
	}
	return errorx.ErrEventNotFound
}

func newTestService(rsvps *fakeRsvpRepo, users *fakeUserRepo, visible ...string) *rsvpService {
	allow := make(map[string]bool, len(visible))
	for _, id := range visible {
		allow[id] = true
	}
	repos := &repository.Repositories{Rsvp: rsvps, User: users}
	return NewRsvpService(repos, stubAccess{visible: allow})
}

func TestSubmitOnInvisibleEventIsNotFound(t *testing.T) {
	svc := newTestService(&fakeRsvpRepo{}, &fakeUserRepo{})
	err := svc.Submit("U_bob", request.SubmitRsvpRequest{
		EventId: "M_hidden", EventKind: event_kind_enum.MEETUP, Response: rsvp_response_enum.ATTENDING,
	})
	// 看不见的事件不能表态，错误和"事件不存在"一致
	if !errors.Is(err, errorx.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestSubmitInvalidResponse(t *testing.T) {
	svc := newTestService(&fakeRsvpRepo{}, &fakeUserRepo{}, "M_1")
	err := svc.Submit("U_bob", request.SubmitRsvpRequest{
		EventId: "M_1", EventKind: event_kind_enum.MEETUP, Response: 7,
	})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Errorf("expected invalid param, got %v", err)
	}
}

func TestSubmitIsUpsert(t *testing.T) {
	rsvps := &fakeRsvpRepo{}
	svc := newTestService(rsvps, &fakeUserRepo{}, "M_1")

	submit := func(response int8) {
		t.Helper()
		err := svc.Submit("U_bob", request.SubmitRsvpRequest{
			EventId: "M_1", EventKind: event_kind_enum.MEETUP, Response: response,
		})
		if err != nil {
			t.Fatalf("Submit error: %v", err)
		}
	}

	submit(rsvp_response_enum.ATTENDING)
	submit(rsvp_response_enum.NOT_ATTENDING)
	submit(rsvp_response_enum.ATTENDING)

	// 重复提交覆盖，永远只有一行
	if len(rsvps.records) != 1 {
		t.Fatalf("expected exactly 1 record after repeated submits, got %d", len(rsvps.records))
	}
	if rsvps.records[0].Response != rsvp_response_enum.ATTENDING {
		t.Errorf("expected final response ATTENDING, got %d", rsvps.records[0].Response)
	}
}

func TestAggregateCountsAndViewerResponse(t *testing.T) {
	rsvps := &fakeRsvpRepo{records: []model.Rsvp{
		{UserId: "U_alice", EventId: "M_1", EventKind: event_kind_enum.MEETUP, Response: rsvp_response_enum.ATTENDING},
		{UserId: "U_bob", EventId: "M_1", EventKind: event_kind_enum.MEETUP, Response: rsvp_response_enum.NOT_ATTENDING},
		{UserId: "U_carol", EventId: "M_1", EventKind: event_kind_enum.MEETUP, Response: rsvp_response_enum.ATTENDING},
		{UserId: "U_carol", EventId: "M_2", EventKind: event_kind_enum.MEETUP, Response: rsvp_response_enum.ATTENDING},
	}}
	users := &fakeUserRepo{users: []model.UserInfo{
		{Uuid: "U_alice", Nickname: "Alice", Handle: "alice"},
		{Uuid: "U_carol", Nickname: "Carol", Handle: "carol"},
	}}
	svc := newTestService(rsvps, users, "M_1")

	// Bob 表态了"不参加"：不进出席者列表，但 viewer_response 有值
	rsp, err := svc.Aggregate("M_1", event_kind_enum.MEETUP, "U_bob")
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if rsp.AttendeeCount != 2 {
		t.Errorf("expected 2 attendees, got %d", rsp.AttendeeCount)
	}
	if len(rsp.Attendees) != 2 {
		t.Errorf("expected 2 attendee summaries, got %d", len(rsp.Attendees))
	}
	for _, a := range rsp.Attendees {
		if a.UserId == "U_bob" {
			t.Error("NOT_ATTENDING user must not appear in attendee list")
		}
	}
	if rsp.ViewerResponse == nil || *rsp.ViewerResponse != rsvp_response_enum.NOT_ATTENDING {
		t.Errorf("expected viewer response NOT_ATTENDING, got %v", rsp.ViewerResponse)
	}

	// Dave 没表态：viewer_response 为 nil，区别于明确的"不参加"
	rsp, err = svc.Aggregate("M_1", event_kind_enum.MEETUP, "U_dave")
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if rsp.ViewerResponse != nil {
		t.Errorf("expected nil viewer response for user with no rsvp, got %v", *rsp.ViewerResponse)
	}
}

func TestAggregateEmptyEvent(t *testing.T) {
	svc := newTestService(&fakeRsvpRepo{}, &fakeUserRepo{}, "P_1")
	rsp, err := svc.Aggregate("P_1", event_kind_enum.PIN, "U_bob")
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if rsp.AttendeeCount != 0 || len(rsp.Attendees) != 0 || rsp.ViewerResponse != nil {
		t.Errorf("expected empty aggregate, got %+v", rsp)
	}
}
