package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"huddle_server/internal/dto/request"
	"huddle_server/internal/dto/respond"
	"huddle_server/internal/handler"
	"huddle_server/internal/https_server"
	"huddle_server/internal/service"
	"huddle_server/pkg/enum/event/event_kind_enum"
	"huddle_server/pkg/errorx"
	"huddle_server/pkg/util/jwt"
)

// 各 Service 接口的桩实现，只返回固定数据，
// 用来验证路由注册、认证中间件和响应信封是否正确

type stubAuthService struct{}

func (stubAuthService) SendSmsCode(telephone string) error { return nil }
func (stubAuthService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	return &respond.RegisterRespond{Uuid: "U_test", Handle: req.Handle}, nil
}
func (stubAuthService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{Uuid: "U_test"}, nil
}
func (stubAuthService) SmsLogin(req request.SmsLoginRequest) (*respond.LoginRespond, error) {
	return &respond.LoginRespond{Uuid: "U_test"}, nil
}
func (stubAuthService) RefreshToken(refreshToken string) (*respond.RefreshTokenRespond, error) {
	return &respond.RefreshTokenRespond{}, nil
}
func (stubAuthService) Logout(userId string) error { return nil }

type stubUserService struct{}

func (stubUserService) GetUserInfo(uuid string) (*respond.GetUserInfoRespond, error) {
	return &respond.GetUserInfoRespond{Uuid: uuid}, nil
}
func (stubUserService) UpdateUserInfo(uuid string, req request.UpdateUserInfoRequest) error {
	return nil
}
func (stubUserService) ResolveHandle(handle string) (*respond.UserSummaryRespond, error) {
	return &respond.UserSummaryRespond{Handle: handle}, nil
}
func (stubUserService) GetUserSummary(uuid string) (*respond.UserSummaryRespond, error) {
	return &respond.UserSummaryRespond{UserId: uuid}, nil
}

type stubContactService struct{}

func (stubContactService) CreateContact(ownerId string, req request.CreateContactRequest) (*respond.ContactRespond, error) {
	return &respond.ContactRespond{ContactId: "T_test"}, nil
}
func (stubContactService) GetContactList(ownerId string) ([]respond.ContactRespond, error) {
	return nil, nil
}
func (stubContactService) UpdateContact(ownerId string, req request.UpdateContactRequest) error {
	return nil
}
func (stubContactService) DeleteContact(ownerId, contactId string) error { return nil }
func (stubContactService) LinkContact(ownerId string, req request.LinkContactRequest) error {
	return nil
}
func (stubContactService) UnlinkContact(ownerId, contactId string) error { return nil }

type stubCircleService struct{}

func (stubCircleService) CreateCircle(ownerId string, req request.CreateCircleRequest) (*respond.CircleRespond, error) {
	return &respond.CircleRespond{CircleId: "C_test"}, nil
}
func (stubCircleService) GetCircleList(ownerId string) ([]respond.CircleRespond, error) {
	return nil, nil
}
func (stubCircleService) GetCircleDetail(ownerId, circleId string) (*respond.CircleDetailRespond, error) {
	return &respond.CircleDetailRespond{}, nil
}
func (stubCircleService) UpdateCircle(ownerId string, req request.UpdateCircleRequest) error {
	return nil
}
func (stubCircleService) DeleteCircle(ownerId, circleId string) error { return nil }
func (stubCircleService) AddCircleMember(ownerId string, req request.CircleMemberRequest) error {
	return nil
}
func (stubCircleService) RemoveCircleMember(ownerId string, req request.CircleMemberRequest) error {
	return nil
}

// stubAccessService 只认一个可见事件 P_visible
type stubAccessService struct{}

func (stubAccessService) ResolveViewerCircles(viewerId string) (map[string]bool, error) {
	return map[string]bool{}, nil
}
func (stubAccessService) CanAccess(viewerId, creatorId string, sharedCircleIds []string, viewerCircles map[string]bool) bool {
	return viewerId == creatorId
}
func (stubAccessService) CheckEventAccess(viewerId, eventId string, eventKind int8) error {
	if eventId == "P_visible" {
		return nil
	}
	return errorx.ErrEventNotFound
}

type stubEventService struct{}

func (stubEventService) CreatePin(creatorId string, req request.CreatePinRequest) (*respond.PinRespond, error) {
	return &respond.PinRespond{PinId: "P_test"}, nil
}
func (stubEventService) DeactivatePin(creatorId, pinId string) error { return nil }
func (stubEventService) CreateMeetup(creatorId string, req request.CreateMeetupRequest) (*respond.MeetupRespond, error) {
	return &respond.MeetupRespond{MeetupId: "M_test"}, nil
}
func (stubEventService) RescheduleMeetup(creatorId string, req request.RescheduleMeetupRequest) error {
	return nil
}
func (stubEventService) DeleteMeetup(creatorId, meetupId string) error { return nil }
func (stubEventService) GetEvent(viewerId, eventId string, eventKind int8) (*respond.FeedItemRespond, error) {
	return &respond.FeedItemRespond{Kind: eventKind}, nil
}
func (stubEventService) GetMyEvents(creatorId string) ([]respond.FeedItemRespond, error) {
	return nil, nil
}

type stubRsvpService struct{}

func (stubRsvpService) Submit(userId string, req request.SubmitRsvpRequest) error { return nil }
func (stubRsvpService) Aggregate(eventId string, eventKind int8, viewerId string) (*respond.AttendanceRespond, error) {
	return &respond.AttendanceRespond{AttendeeCount: 2}, nil
}

type stubFeedService struct{}

func (stubFeedService) BuildFeed(viewerId string, now time.Time) ([]respond.FeedItemRespond, error) {
	return []respond.FeedItemRespond{
		{Kind: event_kind_enum.PIN, Pin: &respond.PinRespond{PinId: "P_1"}},
		{Kind: event_kind_enum.MEETUP, Meetup: &respond.MeetupRespond{MeetupId: "M_1"}},
	}, nil
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt.Init("test-secret-for-handler-smoke-tests", 15, 168)
	if err := handler.InitTrans("zh"); err != nil {
		t.Fatalf("InitTrans error: %v", err)
	}
	svc := &service.Services{
		Auth:    stubAuthService{},
		User:    stubUserService{},
		Contact: stubContactService{},
		Circle:  stubCircleService{},
		Access:  stubAccessService{},
		Event:   stubEventService{},
		Rsvp:    stubRsvpService{},
		Feed:    stubFeedService{},
	}
	return https_server.Init(handler.NewHandlers(svc))
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.GenerateAccessToken("U_viewer")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}
	return "Bearer " + token
}

type envelope struct {
	Code int             `json:"code"`
	Msg  json.RawMessage `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, token, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not JSON: %v, body=%s", err, w.Body.String())
	}
	return w.Code, env
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	engine := newTestEngine(t)

	status, env := doRequest(t, engine, http.MethodGet, "/feed/getFeed", "", "")
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401 without token, got %d", status)
	}
	if env.Code != errorx.CodeUnauthorized {
		t.Errorf("expected code %d, got %d", errorx.CodeUnauthorized, env.Code)
	}

	// 格式错误的 Authorization 头同样拒绝
	status, _ = doRequest(t, engine, http.MethodGet, "/feed/getFeed", "NotBearer xxx", "")
	if status != http.StatusUnauthorized {
		t.Errorf("expected 401 for malformed header, got %d", status)
	}
}

func TestGetFeedEnvelope(t *testing.T) {
	engine := newTestEngine(t)

	status, env := doRequest(t, engine, http.MethodGet, "/feed/getFeed", bearerToken(t), "")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if env.Code != errorx.CodeSuccess {
		t.Fatalf("expected success code, got %d", env.Code)
	}
	var items []respond.FeedItemRespond
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("data is not a feed list: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("expected 2 feed items, got %d", len(items))
	}
}

func TestRegisterValidation(t *testing.T) {
	engine := newTestEngine(t)

	// 注册接口公开，不带 Token；缺字段应返回参数错误
	status, env := doRequest(t, engine, http.MethodPost, "/auth/register", "", `{"telephone":"130"}`)
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if env.Code != errorx.CodeInvalidParam {
		t.Errorf("expected invalid param code, got %d", env.Code)
	}
}

func TestGetAttendanceHidesInvisibleEvents(t *testing.T) {
	engine := newTestEngine(t)
	token := bearerToken(t)

	// 可见事件正常返回聚合
	status, env := doRequest(t, engine, http.MethodGet,
		"/rsvp/getAttendance?event_id=P_visible&event_kind=0", token, "")
	if status != http.StatusOK || env.Code != errorx.CodeSuccess {
		t.Fatalf("expected success for visible event, got status=%d code=%d", status, env.Code)
	}

	// 不可见事件返回"事件不存在"
	_, env = doRequest(t, engine, http.MethodGet,
		"/rsvp/getAttendance?event_id=P_hidden&event_kind=0", token, "")
	if env.Code != errorx.CodeNotFound {
		t.Errorf("expected not found code for invisible event, got %d", env.Code)
	}
}
