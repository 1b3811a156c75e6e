package fireteam

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/elolcd/internal/models"
)

type HTTPRepositoryTestSuite struct {
	suite.Suite
	server *httptest.Server
	repo   *httpRepository

	status   int
	body     string
	lastPath string
	lastAuth string
}

func (s *HTTPRepositoryTestSuite) SetupTest() {
	s.status = http.StatusOK
	s.body = "[]"

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastPath = r.URL.Path
		s.lastAuth = r.Header.Get("X-API-key")
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.body))
	}))

	repo, err := NewHTTP(&Config{
		HTTPClient: s.server.Client(),
		BaseURL:    s.server.URL,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *HTTPRepositoryTestSuite) TearDownTest() {
	s.server.Close()
}

func TestHTTPRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(HTTPRepositoryTestSuite))
}

func (s *HTTPRepositoryTestSuite) TestGetFireteam() {
	s.body = `[
		{"name":"guardian","elo":1520.5,"kills":12,"deaths":10,"rank":3},
		{"name":"teammate","elo":1310,"kills":0,"deaths":4}
	]`

	output, err := s.repo.GetFireteam(context.Background(), &GetFireteamInput{
		ModeCode:     19,
		MembershipID: "4611686018",
	})
	s.Require().NoError(err)

	s.Equal("/fireteam/19/4611686018", s.lastPath)
	s.Empty(s.lastAuth)
	s.Require().Len(output.Players, 2)
	s.Equal(&models.PlayerRecord{Name: "guardian", Elo: 1520.5, Kills: 12, Deaths: 10}, output.Players[0])
	s.Equal(&models.PlayerRecord{Name: "teammate", Elo: 1310, Kills: 0, Deaths: 4}, output.Players[1])
}

func (s *HTTPRepositoryTestSuite) TestGetFireteamEmpty() {
	output, err := s.repo.GetFireteam(context.Background(), &GetFireteamInput{ModeCode: 14, MembershipID: "1"})
	s.Require().NoError(err)
	s.Empty(output.Players)
}

func (s *HTTPRepositoryTestSuite) TestGetFireteamMalformed() {
	s.body = `{"error":"not an array"}`

	_, err := s.repo.GetFireteam(context.Background(), &GetFireteamInput{ModeCode: 14, MembershipID: "1"})
	s.ErrorIs(err, ErrMalformedResponse)
}

func (s *HTTPRepositoryTestSuite) TestGetFireteamMissingField() {
	for _, body := range []string{
		`[{"name":"guardian"}]`,
		`[{"name":"guardian","elo":null,"kills":3,"deaths":1}]`,
		`[{"elo":1500,"kills":3,"deaths":1}]`,
		`[{"name":"guardian","elo":1500,"kills":3,"deaths":1},{"name":"teammate","elo":1400,"kills":2}]`,
		`["guardian"]`,
	} {
		s.body = body

		output, err := s.repo.GetFireteam(context.Background(), &GetFireteamInput{ModeCode: 14, MembershipID: "1"})
		s.ErrorIs(err, ErrMalformedResponse, body)
		s.Nil(output, body)
	}
}

func (s *HTTPRepositoryTestSuite) TestGetFireteamNullBody() {
	for _, body := range []string{"null", "", `"guardian"`, "[{"} {
		s.body = body

		output, err := s.repo.GetFireteam(context.Background(), &GetFireteamInput{ModeCode: 14, MembershipID: "1"})
		s.ErrorIs(err, ErrMalformedResponse, body)
		s.Nil(output, body)
	}
}

func (s *HTTPRepositoryTestSuite) TestGetFireteamBadStatus() {
	s.status = http.StatusNotFound

	_, err := s.repo.GetFireteam(context.Background(), &GetFireteamInput{ModeCode: 14, MembershipID: "1"})
	s.ErrorIs(err, ErrUnexpectedStatus)
}

func (s *HTTPRepositoryTestSuite) TestGetFireteamCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.repo.GetFireteam(ctx, &GetFireteamInput{ModeCode: 14, MembershipID: "1"})
	s.ErrorIs(err, context.Canceled)
}

func (s *HTTPRepositoryTestSuite) TestGetFireteamRequiresMembership() {
	_, err := s.repo.GetFireteam(context.Background(), &GetFireteamInput{ModeCode: 14})
	s.ErrorIs(err, ErrEmptyMembershipID)
}

func (s *HTTPRepositoryTestSuite) TestEndpoint() {
	repo, err := NewHTTP(&Config{BaseURL: "http://api.guardian.gg/"})
	s.Require().NoError(err)

	s.Equal("http://api.guardian.gg/fireteam/0/abc", repo.Endpoint(0, "abc"))
}

func (s *HTTPRepositoryTestSuite) TestNewHTTPValidatesConfig() {
	_, err := NewHTTP(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewHTTP(&Config{})
	s.ErrorIs(err, ErrEmptyBaseURL)
}
