package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cucumber/godog"

	"boardhub/pkg/server/middleware"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	userIDs      map[string]int64
	tokens       map[string]string
	boardIDs     map[string]int64
	projectIDs   map[string]int64
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:         tc,
		userIDs:    make(map[string]int64),
		tokens:     make(map[string]string),
		boardIDs:   make(map[string]int64),
		projectIDs: make(map[string]int64),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a boardhub server is running$`, s.aBoardhubServerIsRunning)
	sc.Step(`^a user "([^"]*)" exists$`, s.aUserExists)
	sc.Step(`^a project "([^"]*)" created by "([^"]*)" exists$`, s.aProjectCreatedByExists)
	sc.Step(`^"([^"]*)" adds "([^"]*)" to project "([^"]*)"$`, s.addsToProject)

	// Board steps
	sc.Step(`^"([^"]*)" creates a board "([^"]*)"$`, s.createsABoard)
	sc.Step(`^"([^"]*)" creates a board "([^"]*)" in project "([^"]*)"$`, s.createsABoardInProject)
	sc.Step(`^"([^"]*)" opens the board "([^"]*)"$`, s.opensTheBoard)
	sc.Step(`^"([^"]*)" deletes the board "([^"]*)"$`, s.deletesTheBoard)
	sc.Step(`^"([^"]*)" lists their boards$`, s.listsTheirBoards)
	sc.Step(`^"([^"]*)" lists recent boards$`, s.listsRecentBoards)
	sc.Step(`^"([^"]*)" searches boards for "([^"]*)"$`, s.searchesBoardsFor)
	sc.Step(`^"([^"]*)" leaves project "([^"]*)"$`, s.leavesProject)
	sc.Step(`^time passes$`, s.timePasses)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response should contain board "([^"]*)"$`, s.theResponseShouldContainBoard)
	sc.Step(`^the response should not contain board "([^"]*)"$`, s.theResponseShouldNotContainBoard)
	sc.Step(`^the boards should be exactly "([^"]*)"$`, s.theBoardsShouldBeExactly)
}

func (s *StepsContext) aBoardhubServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) aUserExists(email string) error {
	if _, ok := s.userIDs[email]; ok {
		return nil
	}

	name := strings.SplitN(email, "@", 2)[0]
	var id int64
	// Scenarios share a database; reuse the row when the user already exists.
	err := s.tc.DB.Raw(`
		INSERT INTO users (email, first_name, is_active) VALUES (?, ?, true)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id
	`, email, name).Scan(&id).Error
	if err != nil {
		return fmt.Errorf("failed to create user %s: %w", email, err)
	}
	s.userIDs[email] = id

	token, err := middleware.IssueToken([]byte(testTokenSecret), email, time.Hour)
	if err != nil {
		return err
	}
	s.tokens[email] = token
	return nil
}

func (s *StepsContext) aProjectCreatedByExists(title, email string) error {
	if err := s.doJSON(email, "POST", "/projects", map[string]interface{}{"title": title}); err != nil {
		return err
	}
	if s.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("project create returned %d: %s", s.response.StatusCode, s.responseBody)
	}

	var project struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(s.responseBody, &project); err != nil {
		return err
	}
	s.projectIDs[title] = project.ID
	return nil
}

func (s *StepsContext) addsToProject(admin, member, title string) error {
	projectID, ok := s.projectIDs[title]
	if !ok {
		return fmt.Errorf("unknown project %q", title)
	}
	return s.doJSON(admin, "POST", fmt.Sprintf("/projects/%d/members", projectID),
		map[string]interface{}{"email": member})
}

func (s *StepsContext) createsABoard(email, title string) error {
	return s.createBoard(email, title, nil)
}

func (s *StepsContext) createsABoardInProject(email, title, project string) error {
	projectID, ok := s.projectIDs[project]
	if !ok {
		return fmt.Errorf("unknown project %q", project)
	}
	return s.createBoard(email, title, &projectID)
}

func (s *StepsContext) createBoard(email, title string, projectID *int64) error {
	payload := map[string]interface{}{"title": title}
	if projectID != nil {
		payload["project_id"] = *projectID
	}
	if err := s.doJSON(email, "POST", "/boards", payload); err != nil {
		return err
	}
	if s.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("board create returned %d: %s", s.response.StatusCode, s.responseBody)
	}

	var board struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(s.responseBody, &board); err != nil {
		return err
	}
	s.boardIDs[title] = board.ID
	return nil
}

func (s *StepsContext) opensTheBoard(email, title string) error {
	boardID, ok := s.boardIDs[title]
	if !ok {
		return fmt.Errorf("unknown board %q", title)
	}
	return s.doJSON(email, "GET", fmt.Sprintf("/boards/%d", boardID), nil)
}

func (s *StepsContext) deletesTheBoard(email, title string) error {
	boardID, ok := s.boardIDs[title]
	if !ok {
		return fmt.Errorf("unknown board %q", title)
	}
	return s.doJSON(email, "DELETE", fmt.Sprintf("/boards/%d", boardID), nil)
}

func (s *StepsContext) listsTheirBoards(email string) error {
	return s.doJSON(email, "GET", "/boards", nil)
}

func (s *StepsContext) listsRecentBoards(email string) error {
	return s.doJSON(email, "GET", "/boards/recent", nil)
}

func (s *StepsContext) searchesBoardsFor(email, query string) error {
	return s.doJSON(email, "GET", "/boards/search?q="+url.QueryEscape(query), nil)
}

func (s *StepsContext) leavesProject(email, title string) error {
	projectID, ok := s.projectIDs[title]
	if !ok {
		return fmt.Errorf("unknown project %q", title)
	}
	userID, ok := s.userIDs[email]
	if !ok {
		return fmt.Errorf("unknown user %q", email)
	}
	return s.doJSON(email, "DELETE", fmt.Sprintf("/projects/%d/members/%d", projectID, userID), nil)
}

// Recency scores are unix seconds, so consecutive views within the same
// second tie. Sleep past the boundary when ordering matters.
func (s *StepsContext) timePasses() error {
	time.Sleep(1100 * time.Millisecond)
	return nil
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expectedStatus int) error {
	if s.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d: %s", expectedStatus, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseShouldContainBoard(title string) error {
	titles, err := s.boardTitles()
	if err != nil {
		return err
	}
	for _, t := range titles {
		if t == title {
			return nil
		}
	}
	return fmt.Errorf("board %q not in response, got %v", title, titles)
}

func (s *StepsContext) theResponseShouldNotContainBoard(title string) error {
	titles, err := s.boardTitles()
	if err != nil {
		return err
	}
	for _, t := range titles {
		if t == title {
			return fmt.Errorf("board %q unexpectedly in response: %v", title, titles)
		}
	}
	return nil
}

func (s *StepsContext) theBoardsShouldBeExactly(expected string) error {
	titles, err := s.boardTitles()
	if err != nil {
		return err
	}

	var want []string
	if expected != "" {
		for _, t := range strings.Split(expected, ",") {
			want = append(want, strings.TrimSpace(t))
		}
	}

	if len(titles) != len(want) {
		return fmt.Errorf("expected boards %v, got %v", want, titles)
	}
	for i := range want {
		if titles[i] != want[i] {
			return fmt.Errorf("expected boards %v, got %v", want, titles)
		}
	}
	return nil
}

func (s *StepsContext) boardTitles() ([]string, error) {
	var boards []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(s.responseBody, &boards); err != nil {
		return nil, fmt.Errorf("failed to parse board list: %w (%s)", err, s.responseBody)
	}

	titles := make([]string, 0, len(boards))
	for _, b := range boards {
		titles = append(titles, b.Title)
	}
	return titles, nil
}

// doJSON issues an authenticated request and captures the response
func (s *StepsContext) doJSON(email, method, path string, payload interface{}) error {
	token, ok := s.tokens[email]
	if !ok {
		return fmt.Errorf("no token for user %q", email)
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.tc.ServerURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}

	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}
