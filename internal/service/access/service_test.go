package access

import (
	"errors"
	"testing"
	"time"

	"huddle_server/internal/dao/mysql/repository"
	"huddle_server/internal/model"
	"huddle_server/pkg/enum/event/event_kind_enum"
	"huddle_server/pkg/errorx"
)

// ==================== 内存 Repository 桩 ====================

type fakeContactRepo struct {
	contacts []model.Contact
}

func (f *fakeContactRepo) FindByUuid(uuid string) (*model.Contact, error) {
	for i := range f.contacts {
		if f.contacts[i].Uuid == uuid {
			return &f.contacts[i], nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "联系人不存在")
}
func (f *fakeContactRepo) FindByOwnerId(ownerId string) ([]model.Contact, error) {
	var out []model.Contact
	for _, c := range f.contacts {
		if c.OwnerId == ownerId {
			out = append(out, c)
		}
	}
	return out, nil
}
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

type fakeCircleRepo struct {
	circles []model.Circle
}

func (f *fakeCircleRepo) FindByUuid(uuid string) (*model.Circle, error) {
	for i := range f.circles {
		if f.circles[i].Uuid == uuid {
			return &f.circles[i], nil
		}
	}
	return nil, errorx.New(errorx.CodeNotFound, "圈子不存在")
}
func (f *fakeCircleRepo) FindByOwnerId(ownerId string) ([]model.Circle, error) {
	var out []model.Circle
	for _, c := range f.circles {
		if c.OwnerId == ownerId {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeCircleRepo) FindUuidsByOwnerId(ownerId string) ([]string, error) {
	var out []string
	for _, c := range f.circles {
		if c.OwnerId == ownerId {
			out = append(out, c.Uuid)
		}
	}
	return out, nil
}
func (f *fakeCircleRepo) FindByUuids(uuids []string) ([]model.Circle, error) {
	var out []model.Circle
	for _, c := range f.circles {
		for _, id := range uuids {
			if c.Uuid == id {
				out = append(out, c)
			}
		}
	}
	return out, nil
}
func (f *fakeCircleRepo) Create(circle *model.Circle) error { return nil }
func (f *fakeCircleRepo) Update(circle *model.Circle) error { return nil }
func (f *fakeCircleRepo) SoftDelete(uuid string) error      { return nil }

type fakeCircleMemberRepo struct {
	members []model.CircleMember
}

func (f *fakeCircleMemberRepo) FindByCircleId(circleId string) ([]model.CircleMember, error) {
	var out []model.CircleMember
	for _, m := range f.members {
		if m.CircleId == circleId {
			out = append(out, m)
		}
	}
	return out, nil
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
	counts := make(map[string]int64)
	for _, m := range f.members {
		for _, cid := range circleIds {
			if m.CircleId == cid {
				counts[cid]++
			}
		}
	}
	return counts, nil
}
func (f *fakeCircleMemberRepo) Create(member *model.CircleMember) error   { return nil }
func (f *fakeCircleMemberRepo) Delete(circleId, contactId string) error   { return nil }
func (f *fakeCircleMemberRepo) DeleteByCircleId(circleId string) error    { return nil }
func (f *fakeCircleMemberRepo) DeleteByContactId(contactId string) error  { return nil }

type fakePinRepo struct {
	pins []model.Pin
}

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
func (f *fakePinRepo) FindByCreatorId(creatorId string) ([]model.Pin, error) {
	var out []model.Pin
	for _, p := range f.pins {
		if p.CreatorId == creatorId {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePinRepo) Create(pin *model.Pin) error                 { return nil }
func (f *fakePinRepo) UpdateActive(uuid string, active bool) error { return nil }

type fakeMeetupRepo struct {
	meetups []model.Meetup
}

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
	var out []model.Meetup
	for _, m := range f.meetups {
		if m.CreatorId == creatorId {
			out = append(out, m)
		}
	}
	return out, nil
}
func (f *fakeMeetupRepo) Create(meetup *model.Meetup) error { return nil }
func (f *fakeMeetupRepo) Update(meetup *model.Meetup) error { return nil }
func (f *fakeMeetupRepo) Delete(uuid string) error          { return nil }

type fakeEventShareRepo struct {
	shares []model.EventCircleShare
}

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
func (f *fakeEventShareRepo) CreateBatch(shares []model.EventCircleShare) error { return nil }
func (f *fakeEventShareRepo) DeleteByEvent(eventId string, eventKind int8) error {
	return nil
}
func (f *fakeEventShareRepo) DeleteByCircleId(circleId string) error { return nil }

// ==================== 测试夹具 ====================

// 场景：Alice 创建事件，把 Bob 记为联系人并放进 "close-friends" 圈子。
// Bob 的联系人记录 linked_user_id 指向 Bob 的账号。
// Carol 不在任何圈子里。
func buildFixture() *repository.Repositories {
	now := time.Now()
	return &repository.Repositories{
		Contact: &fakeContactRepo{contacts: []model.Contact{
			{Uuid: "T_bob", OwnerId: "U_alice", DisplayName: "Bob", LinkedUserId: "U_bob"},
			{Uuid: "T_carol", OwnerId: "U_alice", DisplayName: "Carol", LinkedUserId: "U_carol"},
		}},
		Circle: &fakeCircleRepo{circles: []model.Circle{
			{Uuid: "C_close", OwnerId: "U_alice", Name: "close friends"},
			{Uuid: "C_bob_own", OwnerId: "U_bob", Name: "bob's own"},
		}},
		CircleMember: &fakeCircleMemberRepo{members: []model.CircleMember{
			{CircleId: "C_close", ContactId: "T_bob"},
		}},
		Pin: &fakePinRepo{pins: []model.Pin{
			{Uuid: "P_live", CreatorId: "U_alice", Title: "coffee", IsActive: true, ExpiresAt: now.Add(time.Hour)},
			{Uuid: "P_expired", CreatorId: "U_alice", Title: "old", IsActive: true, ExpiresAt: now.Add(-time.Hour)},
			{Uuid: "P_cancelled", CreatorId: "U_alice", Title: "nope", IsActive: false, ExpiresAt: now.Add(time.Hour)},
		}},
		Meetup: &fakeMeetupRepo{meetups: []model.Meetup{
			{Uuid: "M_future", CreatorId: "U_alice", Title: "dinner", ScheduledFor: now.Add(24 * time.Hour)},
			{Uuid: "M_past", CreatorId: "U_alice", Title: "last week", ScheduledFor: now.Add(-24 * time.Hour)},
		}},
		EventShare: &fakeEventShareRepo{shares: []model.EventCircleShare{
			{EventId: "P_live", EventKind: event_kind_enum.PIN, CircleId: "C_close"},
			{EventId: "P_expired", EventKind: event_kind_enum.PIN, CircleId: "C_close"},
			{EventId: "P_cancelled", EventKind: event_kind_enum.PIN, CircleId: "C_close"},
			{EventId: "M_future", EventKind: event_kind_enum.MEETUP, CircleId: "C_close"},
			{EventId: "M_past", EventKind: event_kind_enum.MEETUP, CircleId: "C_close"},
		}},
	}
}

// ==================== 测试 ====================

func TestResolveViewerCircles(t *testing.T) {
	svc := NewAccessService(buildFixture())

	// Bob 经由 Alice 的联系人记录到达 C_close，并上自己拥有的 C_bob_own
	circles, err := svc.ResolveViewerCircles("U_bob")
	if err != nil {
		t.Fatalf("ResolveViewerCircles error: %v", err)
	}
	if !circles["C_close"] {
		t.Error("expected C_close reachable via reverse contact lookup")
	}
	if !circles["C_bob_own"] {
		t.Error("expected own circle C_bob_own in reachable set")
	}

	// Dave 没有任何联系人记录指向他，也不拥有圈子
	circles, err = svc.ResolveViewerCircles("U_dave")
	if err != nil {
		t.Fatalf("ResolveViewerCircles error: %v", err)
	}
	if len(circles) != 0 {
		t.Errorf("expected empty reachable set, got %v", circles)
	}
}

func TestCreatorAlwaysSeesOwnEvent(t *testing.T) {
	svc := NewAccessService(buildFixture())
	if err := svc.CheckEventAccess("U_alice", "P_live", event_kind_enum.PIN); err != nil {
		t.Errorf("creator should see own pin, got %v", err)
	}
	if err := svc.CheckEventAccess("U_alice", "M_future", event_kind_enum.MEETUP); err != nil {
		t.Errorf("creator should see own meetup, got %v", err)
	}
}

func TestSharedCircleGrantsAccess(t *testing.T) {
	svc := NewAccessService(buildFixture())
	// Bob 在 C_close 里，事件共享到了 C_close
	if err := svc.CheckEventAccess("U_bob", "P_live", event_kind_enum.PIN); err != nil {
		t.Errorf("bob should see pin shared to his circle, got %v", err)
	}
	if err := svc.CheckEventAccess("U_bob", "M_future", event_kind_enum.MEETUP); err != nil {
		t.Errorf("bob should see meetup shared to his circle, got %v", err)
	}
}

func TestUnsharedViewerGetsNotFound(t *testing.T) {
	svc := NewAccessService(buildFixture())
	// Carol 是 Alice 的联系人但不在任何圈子里
	err := svc.CheckEventAccess("U_carol", "P_live", event_kind_enum.PIN)
	if !errors.Is(err, errorx.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound for unshared viewer, got %v", err)
	}
	// Dave 和 Alice 没有任何关系
	err = svc.CheckEventAccess("U_dave", "M_future", event_kind_enum.MEETUP)
	if !errors.Is(err, errorx.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound for stranger, got %v", err)
	}
}

func TestMissingAndInvisibleAreSameSignal(t *testing.T) {
	svc := NewAccessService(buildFixture())

	missing := svc.CheckEventAccess("U_bob", "P_nope", event_kind_enum.PIN)
	invisible := svc.CheckEventAccess("U_carol", "P_live", event_kind_enum.PIN)

	if !errors.Is(missing, errorx.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound for missing event, got %v", missing)
	}
	// 不存在和不可见必须返回同一个错误值，不能让调用方区分
	if missing.Error() != invisible.Error() {
		t.Errorf("missing and invisible must be indistinguishable: %q vs %q",
			missing.Error(), invisible.Error())
	}
}

func TestExpiredAndCancelledPinsInvisible(t *testing.T) {
	svc := NewAccessService(buildFixture())

	// 过期的 Pin 对任何人都不可见，包括创建者和共享圈子成员
	for _, viewer := range []string{"U_alice", "U_bob"} {
		if err := svc.CheckEventAccess(viewer, "P_expired", event_kind_enum.PIN); !errors.Is(err, errorx.ErrEventNotFound) {
			t.Errorf("expired pin should be invisible to %s, got %v", viewer, err)
		}
		if err := svc.CheckEventAccess(viewer, "P_cancelled", event_kind_enum.PIN); !errors.Is(err, errorx.ErrEventNotFound) {
			t.Errorf("cancelled pin should be invisible to %s, got %v", viewer, err)
		}
	}
}

func TestPastMeetupStillAccessibleById(t *testing.T) {
	svc := NewAccessService(buildFixture())
	// 过了预约时间的 Meetup 不进信息流，但按 ID 查看仍走同一条可见性规则
	if err := svc.CheckEventAccess("U_bob", "M_past", event_kind_enum.MEETUP); err != nil {
		t.Errorf("past meetup should remain accessible by id, got %v", err)
	}
}

func TestNoCrossOwnerLeakage(t *testing.T) {
	now := time.Now()
	// 两个互不相识的圈主：Alice 和 Zoe，圈子同名同表情。
	// Bob 在 Alice 的圈子里，Yara 在 Zoe 的圈子里。
	repos := &repository.Repositories{
		Contact: &fakeContactRepo{contacts: []model.Contact{
			{Uuid: "T_a_bob", OwnerId: "U_alice", DisplayName: "Bob", LinkedUserId: "U_bob"},
			{Uuid: "T_z_yara", OwnerId: "U_zoe", DisplayName: "Yara", LinkedUserId: "U_yara"},
		}},
		Circle: &fakeCircleRepo{circles: []model.Circle{
			{Uuid: "C_alice_inner", OwnerId: "U_alice", Name: "inner", Emoji: "🍕"},
			{Uuid: "C_zoe_inner", OwnerId: "U_zoe", Name: "inner", Emoji: "🍕"},
		}},
		CircleMember: &fakeCircleMemberRepo{members: []model.CircleMember{
			{CircleId: "C_alice_inner", ContactId: "T_a_bob"},
			{CircleId: "C_zoe_inner", ContactId: "T_z_yara"},
		}},
		Pin: &fakePinRepo{pins: []model.Pin{
			{Uuid: "P_alice", CreatorId: "U_alice", IsActive: true, ExpiresAt: now.Add(time.Hour)},
			{Uuid: "P_zoe", CreatorId: "U_zoe", IsActive: true, ExpiresAt: now.Add(time.Hour)},
		}},
		Meetup: &fakeMeetupRepo{},
		EventShare: &fakeEventShareRepo{shares: []model.EventCircleShare{
			{EventId: "P_alice", EventKind: event_kind_enum.PIN, CircleId: "C_alice_inner"},
			{EventId: "P_zoe", EventKind: event_kind_enum.PIN, CircleId: "C_zoe_inner"},
		}},
	}
	svc := NewAccessService(repos)

	// 各自看得见自己圈主共享的事件
	if err := svc.CheckEventAccess("U_bob", "P_alice", event_kind_enum.PIN); err != nil {
		t.Errorf("bob should see alice's pin, got %v", err)
	}
	if err := svc.CheckEventAccess("U_yara", "P_zoe", event_kind_enum.PIN); err != nil {
		t.Errorf("yara should see zoe's pin, got %v", err)
	}

	// 在 Alice 圈子里，不等于能看 Zoe 的事件，即使圈子同名同表情；反之亦然
	if err := svc.CheckEventAccess("U_bob", "P_zoe", event_kind_enum.PIN); !errors.Is(err, errorx.ErrEventNotFound) {
		t.Errorf("bob must not see zoe's pin, got %v", err)
	}
	if err := svc.CheckEventAccess("U_yara", "P_alice", event_kind_enum.PIN); !errors.Is(err, errorx.ErrEventNotFound) {
		t.Errorf("yara must not see alice's pin, got %v", err)
	}
}

func TestCanAccessPredicate(t *testing.T) {
	svc := NewAccessService(buildFixture())
	viewerCircles := map[string]bool{"C_close": true}

	if !svc.CanAccess("U_bob", "U_alice", []string{"C_other", "C_close"}, viewerCircles) {
		t.Error("intersection with shared set should grant access")
	}
	if svc.CanAccess("U_bob", "U_alice", []string{"C_other"}, viewerCircles) {
		t.Error("no intersection should deny access")
	}
	if svc.CanAccess("U_bob", "U_alice", nil, viewerCircles) {
		t.Error("event shared to no circles should be private to creator")
	}
	if !svc.CanAccess("U_alice", "U_alice", nil, map[string]bool{}) {
		t.Error("creator bypasses the circle intersection")
	}
}

func TestInvalidEventKind(t *testing.T) {
	svc := NewAccessService(buildFixture())
	err := svc.CheckEventAccess("U_bob", "P_live", 9)
	if !errors.Is(err, errorx.ErrInvalidParam) {
		t.Errorf("expected ErrInvalidParam for unknown kind, got %v", err)
	}
}
