package handler_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"desert-war-service/api"
	"desert-war-service/internal/allocation"
	"desert-war-service/internal/database"
	"desert-war-service/internal/handler"
	"desert-war-service/internal/notify"
	"desert-war-service/internal/repository"
	"desert-war-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RosterHandlerTestSuite struct {
	suite.Suite
	db   *sql.DB
	echo *echo.Echo
}

func TestRosterHandlerSuite(t *testing.T) {
	suite.Run(t, new(RosterHandlerTestSuite))
}

func (suite *RosterHandlerTestSuite) SetupTest() {
	var err error
	suite.db, err = database.NewSQLiteDB(":memory:")
	require.NoError(suite.T(), err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	queries := database.New(suite.db)
	eventRepo := repository.NewEventRepository(suite.db, queries)
	rosterRepo := repository.NewRosterRepository(suite.db, queries)

	eventUC := usecase.NewEventUseCase(eventRepo)
	allocationUC := usecase.NewAllocationUseCase(
		rosterRepo,
		eventRepo,
		notify.NewLogNotifier(logger),
		allocation.Limits{Team: 2, Reserve: 1},
		logger,
	)

	suite.echo = echo.New()
	suite.echo.Use(handler.LoggingMiddleware(logger))
	api.RegisterHandlers(suite.echo, handler.NewAPIHandler(eventUC, allocationUC, logger))
}

func (suite *RosterHandlerTestSuite) TearDownTest() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *RosterHandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(suite.T(), err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *RosterHandlerTestSuite) createEvent() {
	event := api.Event{
		EventId: "dw-1",
		Name:    "Desert war week 1",
		Members: []api.RosterMember{
			{UserId: "u1", DisplayName: "Ann", Level: 40, IntentType: "A_TEAM"},
			{UserId: "u2", DisplayName: "Bran", Level: 40, IntentType: "A_TEAM"},
			{UserId: "u3", DisplayName: "Zed", Level: 10, IntentType: "AB_POSSIBLE"},
		},
	}

	rec := suite.do(http.MethodPost, "/event/add", event)
	require.Equal(suite.T(), http.StatusCreated, rec.Code, rec.Body.String())
}

func (suite *RosterHandlerTestSuite) getRoster() api.RosterView {
	rec := suite.do(http.MethodGet, "/roster/get?event_id=dw-1", nil)
	require.Equal(suite.T(), http.StatusOK, rec.Code, rec.Body.String())

	var view api.RosterView
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func userIDs(members []api.RosterMember) []string {
	result := make([]string, len(members))
	for i, m := range members {
		result[i] = m.UserId
	}
	return result
}

func (suite *RosterHandlerTestSuite) TestGetRoster() {
	suite.createEvent()

	view := suite.getRoster()

	assert.Equal(suite.T(), "LOADED", view.State)
	assert.Equal(suite.T(), []string{"u1", "u2"}, userIDs(view.Buckets["A_TEAM"]))
	assert.Equal(suite.T(), []string{"u3"}, userIDs(view.Buckets["UNDECIDED"]))
	assert.Equal(suite.T(), 2, view.Limits["A_TEAM"])
	assert.Nil(suite.T(), view.Buckets["A_TEAM"][0].AssignedTeam)
	assert.Equal(suite.T(), -1, view.Buckets["A_TEAM"][0].Position)
}

func (suite *RosterHandlerTestSuite) TestGetRoster_Errors() {
	rec := suite.do(http.MethodGet, "/roster/get", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodGet, "/roster/get?event_id=missing", nil)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "NOT_FOUND")
}

func (suite *RosterHandlerTestSuite) TestCreateEvent_Duplicate() {
	suite.createEvent()

	rec := suite.do(http.MethodPost, "/event/add", api.Event{
		EventId: "dw-1",
		Name:    "again",
		Members: []api.RosterMember{{UserId: "u9", DisplayName: "Nine"}},
	})

	assert.Equal(suite.T(), http.StatusConflict, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "EVENT_EXISTS")
}

func (suite *RosterHandlerTestSuite) TestConfirmFlow() {
	suite.createEvent()

	// пока UNDECIDED не пуст, подтверждение блокируется
	rec := suite.do(http.MethodPost, "/roster/confirm", api.EventRef{EventId: "dw-1"})
	require.Equal(suite.T(), http.StatusConflict, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "PENDING_UNDECIDED_MEMBERS")

	// перемещение в заполненный состав проходит с предупреждением
	rec = suite.do(http.MethodPost, "/roster/move", api.PostRosterMoveJSONBody{
		EventId: "dw-1", UserId: "u3", From: api.UNDECIDED, To: api.ATEAM,
	})
	require.Equal(suite.T(), http.StatusOK, rec.Code, rec.Body.String())

	var moved struct {
		Roster  api.RosterView       `json:"roster"`
		Warning *api.CapacityWarning `json:"warning"`
	}
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &moved))
	require.NotNil(suite.T(), moved.Warning)
	assert.Equal(suite.T(), 3, moved.Warning.CurrentCount)
	assert.Equal(suite.T(), []string{"u1", "u2", "u3"}, userIDs(moved.Roster.Buckets["A_TEAM"]))

	rec = suite.do(http.MethodPost, "/roster/setPosition", api.PostRosterSetPositionJSONBody{
		EventId: "dw-1", UserId: "u3", Position: 5,
	})
	require.Equal(suite.T(), http.StatusOK, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodPost, "/roster/confirm", api.EventRef{EventId: "dw-1"})
	require.Equal(suite.T(), http.StatusOK, rec.Code, rec.Body.String())

	var result api.CommitResult
	require.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(suite.T(), "confirm", result.Kind)
	assert.Equal(suite.T(), 3, result.Entries)

	// после перечитывания из БД состояние сохраняется
	rec = suite.do(http.MethodPost, "/roster/reload", api.EventRef{EventId: "dw-1"})
	require.Equal(suite.T(), http.StatusOK, rec.Code, rec.Body.String())

	view := suite.getRoster()
	assert.True(suite.T(), view.Confirmed)
	assert.Equal(suite.T(), "CONFIRMED", view.State)
	require.Len(suite.T(), view.Buckets["A_TEAM"], 3)
	zed := view.Buckets["A_TEAM"][2]
	require.NotNil(suite.T(), zed.AssignedTeam)
	assert.Equal(suite.T(), "A_TEAM", *zed.AssignedTeam)
	assert.Equal(suite.T(), 5, zed.Position)
}

func (suite *RosterHandlerTestSuite) TestMove_Errors() {
	suite.createEvent()

	rec := suite.do(http.MethodPost, "/roster/move", api.PostRosterMoveJSONBody{
		EventId: "dw-1", UserId: "u1", From: api.BTEAM, To: api.ATEAM,
	})
	assert.Equal(suite.T(), http.StatusConflict, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "BUCKET_MISMATCH")

	rec = suite.do(http.MethodPost, "/roster/move", api.PostRosterMoveJSONBody{
		EventId: "dw-1", UserId: "ghost", From: api.ATEAM, To: api.BTEAM,
	})
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)

	rec = suite.do(http.MethodPost, "/roster/setPosition", api.PostRosterSetPositionJSONBody{
		EventId: "dw-1", UserId: "u1", Position: 40,
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *RosterHandlerTestSuite) TestSaveExcludedFlexibleMember() {
	suite.createEvent()

	rec := suite.do(http.MethodPost, "/roster/move", api.PostRosterMoveJSONBody{
		EventId: "dw-1", UserId: "u3", From: api.UNDECIDED, To: api.EXCLUDED,
	})
	require.Equal(suite.T(), http.StatusOK, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodPost, "/roster/save", api.EventRef{EventId: "dw-1"})
	require.Equal(suite.T(), http.StatusOK, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodPost, "/roster/reload", api.EventRef{EventId: "dw-1"})
	require.Equal(suite.T(), http.StatusOK, rec.Code)

	view := suite.getRoster()
	assert.Equal(suite.T(), "LOADED", view.State)
	require.Len(suite.T(), view.Buckets["EXCLUDED"], 1)
	zed := view.Buckets["EXCLUDED"][0]
	assert.True(suite.T(), zed.IsCandidate)
	require.NotNil(suite.T(), zed.AssignedTeam)
	assert.Equal(suite.T(), "NONE", *zed.AssignedTeam)
	assert.Empty(suite.T(), view.Buckets["UNDECIDED"])
}

func (suite *RosterHandlerTestSuite) TestReturnExcludedMemberToUndecided() {
	suite.createEvent()

	rec := suite.do(http.MethodPost, "/roster/move", api.PostRosterMoveJSONBody{
		EventId: "dw-1", UserId: "u3", From: api.UNDECIDED, To: api.EXCLUDED,
	})
	require.Equal(suite.T(), http.StatusOK, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodPost, "/roster/save", api.EventRef{EventId: "dw-1"})
	require.Equal(suite.T(), http.StatusOK, rec.Code, rec.Body.String())

	rec = suite.do(http.MethodPost, "/roster/move", api.PostRosterMoveJSONBody{
		EventId: "dw-1", UserId: "u3", From: api.EXCLUDED, To: api.UNDECIDED,
	})
	require.Equal(suite.T(), http.StatusOK, rec.Code, rec.Body.String())

	// до сохранения представление уже отражает сброс флага кандидата
	view := suite.getRoster()
	assert.Equal(suite.T(), 1, view.PendingCount)
	require.Len(suite.T(), view.Buckets["UNDECIDED"], 1)
	zed := view.Buckets["UNDECIDED"][0]
	assert.Equal(suite.T(), "u3", zed.UserId)
	assert.Nil(suite.T(), zed.AssignedTeam)
	assert.False(suite.T(), zed.IsCandidate)
	assert.Empty(suite.T(), view.Buckets["EXCLUDED"])
}
