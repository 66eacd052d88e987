package feed

import (
	"testing"
	"time"

	"huddle_server/internal/dao/mysql/repository"
	"huddle_server/internal/dto/respond"
	"huddle_server/internal/model"
	"huddle_server/internal/service/access"
	"huddle_server/pkg/enum/event/event_kind_enum"
	"huddle_server/pkg/errorx"

	"gorm.io/gorm"
)

// ==================== 内存 Repository 桩 ====================

type fakeContactRepo struct{ contacts []model.Contact }

func (f *fakeContactRepo) FindByUuid(uuid string) (*model.Contact, error) {
	return nil, errorx.New(errorx.CodeNotFound, "联系人不存在")
}
func (f *fakeContactRepo) FindByOwnerId(ownerId string) ([]model.Contact, error) { return nil, nil }
func (f *fakeContactRepo) FindByLinkedUserId(linkedUserId string) ([]model.Contact, error) {
	var out []model.Contact
	for _, c := range f.contacts {
		if c.LinkedUserId == linkedUserId {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeContactRepo) Create(contact *model.Contact) error { return nil }
func (f *fakeContactRepo) Update(contact *model.Contact) error { return nil }
func (f *fakeContactRepo) SoftDelete(uuid string) error        { return nil }

type fakeCircleRepo struct{ circles []model.Circle }

func (f *fakeCircleRepo) FindByUuid(uuid string) (*model.Circle, error) {
	return nil, errorx.New(errorx.CodeNotFound, "圈子不存在")
}
func (f *fakeCircleRepo) FindByOwnerId(ownerId string) ([]model.Circle, error) { return nil, nil }
func (f *fakeCircleRepo) FindUuidsByOwnerId(ownerId string) ([]string, error) {
	var out []string
	for _, c := range f.circles {
		if c.OwnerId == ownerId {
			out = append(out, c.Uuid)
		}
	}
	return out, nil
}
func (f *fakeCircleRepo) FindByUuids(uuids []string) ([]model.Circle, error) { return nil, nil }
func (f *fakeCircleRepo) Create(circle *model.Circle) error                  { return nil }
func (f *fakeCircleRepo) Update(circle *model.Circle) error                  { return nil }
func (f *fakeCircleRepo) SoftDelete(uuid string) error                       { return nil }

type fakeCircleMemberRepo struct{ members []model.CircleMember }

func (f *fakeCircleMemberRepo) FindByCircleId(circleId string) ([]model.CircleMember, error) {
	return nil, nil
}
func (f *fakeCircleMemberRepo) FindCircleIdsByContactIds(contactIds []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, m := range f.members {
		for _, cid := range contactIds {
			if m.ContactId == cid && !seen[m.CircleId] {
				seen[m.CircleId] = true
				out = append(out, m.CircleId)
			}
		}
	}
	return out, nil
}
func (f *fakeCircleMemberRepo) CountByCircleIds(circleIds []string) (map[string]int64, error) {
	return map[string]int64{}, nil
}
func (f *fakeCircleMemberRepo) Create(member *model.CircleMember) error  { return nil }
func (f *fakeCircleMemberRepo) Delete(circleId, contactId string) error  { return nil }
func (f *fakeCircleMemberRepo) DeleteByCircleId(circleId string) error   { return nil }
func (f *fakeCircleMemberRepo) DeleteByContactId(contactId string) error { return nil }

type fakePinRepo struct{ pins []model.Pin }

func (f *fakePinRepo) FindByUuid(uuid string) (*model.Pin, error) {
	for i := range f.pins {
		if f.pins[i].Uuid == uuid {
			return &f.pins[i], nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "Pin不存在")
}
func (f *fakePinRepo) FindLive(now time.Time) ([]model.Pin, error) {
	var out []model.Pin
	for _, p := range f.pins {
		if p.Live(now) {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePinRepo) FindByCreatorId(creatorId string) ([]model.Pin, error) { return nil, nil }
func (f *fakePinRepo) Create(pin *model.Pin) error                           { return nil }
func (f *fakePinRepo) UpdateActive(uuid string, active bool) error           { return nil }

type fakeMeetupRepo struct{ meetups []model.Meetup }

func (f *fakeMeetupRepo) FindByUuid(uuid string) (*model.Meetup, error) {
	for i := range f.meetups {
		if f.meetups[i].Uuid == uuid {
			return &f.meetups[i], nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "Meetup不存在")
}
func (f *fakeMeetupRepo) FindUpcoming(now time.Time) ([]model.Meetup, error) {
	var out []model.Meetup
	for _, m := range f.meetups {
		if !m.ScheduledFor.Before(now) {
			out = append(out, m)
		}
	}
	return out, nil
}
func (f *fakeMeetupRepo) FindByCreatorId(creatorId string) ([]model.Meetup, error) {
	return nil, nil
}
func (f *fakeMeetupRepo) Create(meetup *model.Meetup) error { return nil }
func (f *fakeMeetupRepo) Update(meetup *model.Meetup) error { return nil }
func (f *fakeMeetupRepo) Delete(uuid string) error          { return nil }

type fakeEventShareRepo struct{ shares []model.EventCircleShare }

func (f *fakeEventShareRepo) FindCircleIdsByEvent(eventId string, eventKind int8) ([]string, error) {
	var out []string
	for _, s := range f.shares {
		if s.EventId == eventId && s.EventKind == eventKind {
			out = append(out, s.CircleId)
		}
	}
	return out, nil
}
func (f *fakeEventShareRepo) FindByEvents(eventKind int8, eventIds []string) (map[string][]string, error) {
	out := make(map[string][]string)
	for _, s := range f.shares {
		if s.EventKind != eventKind {
			continue
		}
		for _, id := range eventIds {
			if s.EventId == id {
				out[id] = append(out[id], s.CircleId)
			}
		}
	}
	return out, nil
}
func (f *fakeEventShareRepo) CreateBatch(shares []model.EventCircleShare) error  { return nil }
func (f *fakeEventShareRepo) DeleteByEvent(eventId string, eventKind int8) error { return nil }
func (f *fakeEventShareRepo) DeleteByCircleId(circleId string) error             { return nil }

type fakeUserRepo struct{ users []model.UserInfo }

func (f *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	for i := range f.users {
		if f.users[i].Uuid == uuid {
			return &f.users[i], nil
		}
	}
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

// stubAggregator 出席聚合桩，信息流测试不关心聚合内容
type stubAggregator struct{}

func (stubAggregator) Aggregate(eventId string, eventKind int8, viewerId string) (*respond.AttendanceRespond, error) {
	return &respond.AttendanceRespond{Attendees: []respond.UserSummaryRespond{}}, nil
}

// ==================== 测试夹具 ====================

// 场景：Alice 的圈子 C_close 里有 Bob；Alice 发了三个 Pin 和两个 Meetup，
// 其中一部分共享到 C_close，一部分只给了别的圈子；还有过期/过时的事件。
func buildFixture(now time.Time) *repository.Repositories {
	return &repository.Repositories{
		User: &fakeUserRepo{users: []model.UserInfo{
			{Uuid: "U_alice", Nickname: "Alice", Handle: "alice"},
			{Uuid: "U_bob", Nickname: "Bob", Handle: "bob"},
		}},
		Contact: &fakeContactRepo{contacts: []model.Contact{
			{Uuid: "T_bob", OwnerId: "U_alice", DisplayName: "Bob", LinkedUserId: "U_bob"},
		}},
		Circle: &fakeCircleRepo{circles: []model.Circle{
			{Uuid: "C_close", OwnerId: "U_alice"},
			{Uuid: "C_work", OwnerId: "U_alice"},
		}},
		CircleMember: &fakeCircleMemberRepo{members: []model.CircleMember{
			{CircleId: "C_close", ContactId: "T_bob"},
		}},
		Pin: &fakePinRepo{pins: []model.Pin{
			{Model: gormModel(now.Add(-3 * time.Hour)), Uuid: "P_old", CreatorId: "U_alice", IsActive: true, ExpiresAt: now.Add(time.Hour)},
			{Model: gormModel(now.Add(-1 * time.Hour)), Uuid: "P_new", CreatorId: "U_alice", IsActive: true, ExpiresAt: now.Add(3 * time.Hour)},
			{Model: gormModel(now.Add(-6 * time.Hour)), Uuid: "P_expired", CreatorId: "U_alice", IsActive: true, ExpiresAt: now.Add(-2 * time.Hour)},
			{Model: gormModel(now.Add(-2 * time.Hour)), Uuid: "P_work_only", CreatorId: "U_alice", IsActive: true, ExpiresAt: now.Add(2 * time.Hour)},
		}},
		Meetup: &fakeMeetupRepo{meetups: []model.Meetup{
			{Uuid: "M_tomorrow", CreatorId: "U_alice", ScheduledFor: now.Add(24 * time.Hour)},
			{Uuid: "M_tonight", CreatorId: "U_alice", ScheduledFor: now.Add(4 * time.Hour)},
			{Uuid: "M_past", CreatorId: "U_alice", ScheduledFor: now.Add(-24 * time.Hour)},
		}},
		EventShare: &fakeEventShareRepo{shares: []model.EventCircleShare{
			{EventId: "P_old", EventKind: event_kind_enum.PIN, CircleId: "C_close"},
			{EventId: "P_new", EventKind: event_kind_enum.PIN, CircleId: "C_close"},
			{EventId: "P_expired", EventKind: event_kind_enum.PIN, CircleId: "C_close"},
			{EventId: "P_work_only", EventKind: event_kind_enum.PIN, CircleId: "C_work"},
			{EventId: "M_tomorrow", EventKind: event_kind_enum.MEETUP, CircleId: "C_close"},
			{EventId: "M_tonight", EventKind: event_kind_enum.MEETUP, CircleId: "C_close"},
			{EventId: "M_past", EventKind: event_kind_enum.MEETUP, CircleId: "C_close"},
		}},
	}
}

func gormModel(createdAt time.Time) gorm.Model {
	return gorm.Model{CreatedAt: createdAt}
}

func newFeedService(repos *repository.Repositories) *feedService {
	return NewFeedService(repos, access.NewAccessService(repos), stubAggregator{})
}

// ==================== 测试 ====================

func TestFeedFiltersInvisibleAndStaleEvents(t *testing.T) {
	now := time.Now()
	svc := newFeedService(buildFixture(now))

	items, err := svc.BuildFeed("U_bob", now)
	if err != nil {
		t.Fatalf("BuildFeed error: %v", err)
	}

	got := make(map[string]bool)
	for _, item := range items {
		if item.Pin != nil {
			got[item.Pin.PinId] = true
		}
		if item.Meetup != nil {
			got[item.Meetup.MeetupId] = true
		}
	}

	for _, want := range []string{"P_old", "P_new", "M_tomorrow", "M_tonight"} {
		if !got[want] {
			t.Errorf("expected %s in feed, items: %v", want, got)
		}
	}
	for _, exclude := range []string{"P_expired", "P_work_only", "M_past"} {
		if got[exclude] {
			t.Errorf("did not expect %s in feed", exclude)
		}
	}
}

func TestFeedOrdering(t *testing.T) {
	now := time.Now()
	svc := newFeedService(buildFixture(now))

	items, err := svc.BuildFeed("U_bob", now)
	if err != nil {
		t.Fatalf("BuildFeed error: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}

	// Pin 全部在 Meetup 之前；Pin 新的在前，Meetup 近的在前
	wantOrder := []string{"P_new", "P_old", "M_tonight", "M_tomorrow"}
	for i, item := range items {
		var id string
		if item.Pin != nil {
			id = item.Pin.PinId
		} else {
			id = item.Meetup.MeetupId
		}
		if id != wantOrder[i] {
			t.Errorf("position %d: expected %s, got %s", i, wantOrder[i], id)
		}
	}
}

func TestFeedCreatorSeesEverythingOwn(t *testing.T) {
	now := time.Now()
	svc := newFeedService(buildFixture(now))

	// Alice 是全部事件的创建者：存活/未开始的事件全部可见，
	// 包括只共享给 C_work 的 Pin；过期 Pin 和已开始的 Meetup 仍被候选阶段排除
	items, err := svc.BuildFeed("U_alice", now)
	if err != nil {
		t.Fatalf("BuildFeed error: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items for creator, got %d", len(items))
	}
}

func TestFeedEmptyForStranger(t *testing.T) {
	now := time.Now()
	svc := newFeedService(buildFixture(now))

	items, err := svc.BuildFeed("U_dave", now)
	if err != nil {
		t.Fatalf("BuildFeed error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty feed for stranger, got %d items", len(items))
	}
}

func TestFeedStableOrderForEqualTimestamps(t *testing.T) {
	now := time.Now()
	repos := buildFixture(now)
	// 两个创建时间完全相同的 Pin，候选顺序即 Repository 返回顺序
	same := now.Add(-30 * time.Minute)
	repos.Pin = &fakePinRepo{pins: []model.Pin{
		{Model: gormModel(same), Uuid: "P_a", CreatorId: "U_alice", IsActive: true, ExpiresAt: now.Add(time.Hour)},
		{Model: gormModel(same), Uuid: "P_b", CreatorId: "U_alice", IsActive: true, ExpiresAt: now.Add(time.Hour)},
	}}
	repos.EventShare = &fakeEventShareRepo{shares: []model.EventCircleShare{
		{EventId: "P_a", EventKind: event_kind_enum.PIN, CircleId: "C_close"},
		{EventId: "P_b", EventKind: event_kind_enum.PIN, CircleId: "C_close"},
	}}
	svc := newFeedService(repos)

	items, err := svc.BuildFeed("U_bob", now)
	if err != nil {
		t.Fatalf("BuildFeed error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Pin.PinId != "P_a" || items[1].Pin.PinId != "P_b" {
		t.Errorf("stable sort must preserve input order for equal timestamps, got %s then %s",
			items[0].Pin.PinId, items[1].Pin.PinId)
	}
}
