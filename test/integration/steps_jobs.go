package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cucumber/godog"

	"github.com/JurmiThinley/jobtrackr/pkg/model"
)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	tokens       map[string]string
	currentUser  string
	lastJobID    int64
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:     tc,
		tokens: make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^the server is running$`, s.theServerIsRunning)
	sc.Step(`^a user "([^"]*)" exists with password "([^"]*)"$`, s.aUserExistsWithPassword)
	sc.Step(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, s.iAmLoggedInAs)
	sc.Step(`^I switch to user "([^"]*)"$`, s.iSwitchToUser)
	sc.Step(`^I am not authenticated$`, s.iAmNotAuthenticated)

	// Job steps
	sc.Step(`^I create a job with the body:$`, s.iCreateAJobWithBody)
	sc.Step(`^I remember the job id$`, s.iRememberTheJobID)
	sc.Step(`^I list my jobs$`, s.iListMyJobs)
	sc.Step(`^I fetch the remembered job$`, s.iFetchTheRememberedJob)
	sc.Step(`^I update the remembered job with the body:$`, s.iUpdateTheRememberedJobWithBody)
	sc.Step(`^I delete the remembered job$`, s.iDeleteTheRememberedJob)
	sc.Step(`^I ask who I am$`, s.iAskWhoIAm)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, s.theResponseFieldShouldBe)
	sc.Step(`^the response field "([^"]*)" should be today's date$`, s.theResponseFieldShouldBeToday)
	sc.Step(`^the response should list (\d+) jobs?$`, s.theResponseShouldListJobs)
	sc.Step(`^the response message should be "([^"]*)"$`, s.theResponseMessageShouldBe)
}

// Background steps

func (s *StepsContext) theServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) aUserExistsWithPassword(username, password string) error {
	status, _, err := s.postJSON("/auth/register", map[string]string{
		"username": username,
		"password": password,
	}, "")
	if err != nil {
		return err
	}
	// 409 means the user survives from an earlier scenario, which is fine
	if status != http.StatusCreated && status != http.StatusConflict {
		return fmt.Errorf("unexpected status %d registering %q", status, username)
	}
	return nil
}

func (s *StepsContext) iAmLoggedInAs(username, password string) error {
	status, body, err := s.postJSON("/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("login for %q failed with status %d: %s", username, status, body)
	}
	var login struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &login); err != nil {
		return fmt.Errorf("failed to parse login response: %w", err)
	}
	s.tokens[username] = login.Token
	s.currentUser = username
	return nil
}

func (s *StepsContext) iSwitchToUser(username string) error {
	if _, ok := s.tokens[username]; !ok {
		return fmt.Errorf("no token for user %q, log in first", username)
	}
	s.currentUser = username
	return nil
}

func (s *StepsContext) iAmNotAuthenticated() error {
	s.currentUser = ""
	return nil
}

// Job steps

func (s *StepsContext) iCreateAJobWithBody(body *godog.DocString) error {
	return s.doRequest(http.MethodPost, "/jobs/", []byte(body.Content))
}

func (s *StepsContext) iRememberTheJobID() error {
	var job model.Job
	if err := json.Unmarshal(s.responseBody, &job); err != nil {
		return fmt.Errorf("failed to parse job from response: %w", err)
	}
	if job.ID == 0 {
		return fmt.Errorf("response carries no job id: %s", s.responseBody)
	}
	s.lastJobID = job.ID
	return nil
}

func (s *StepsContext) iListMyJobs() error {
	return s.doRequest(http.MethodGet, "/jobs/", nil)
}

func (s *StepsContext) iFetchTheRememberedJob() error {
	return s.doRequest(http.MethodGet, fmt.Sprintf("/jobs/%d", s.lastJobID), nil)
}

func (s *StepsContext) iUpdateTheRememberedJobWithBody(body *godog.DocString) error {
	return s.doRequest(http.MethodPut, fmt.Sprintf("/jobs/%d", s.lastJobID), []byte(body.Content))
}

func (s *StepsContext) iDeleteTheRememberedJob() error {
	return s.doRequest(http.MethodDelete, fmt.Sprintf("/jobs/%d", s.lastJobID), nil)
}

func (s *StepsContext) iAskWhoIAm() error {
	return s.doRequest(http.MethodGet, "/whoami", nil)
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(status int) error {
	if s.response == nil {
		return fmt.Errorf("no response recorded")
	}
	if s.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, s.response.StatusCode, s.responseBody)
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldBe(field, expected string) error {
	actual, err := s.responseField(field)
	if err != nil {
		return err
	}
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", field, expected, actual)
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldBeToday(field string) error {
	actual, err := s.responseField(field)
	if err != nil {
		return err
	}
	today := time.Now().UTC().Format(model.DateFormat)
	if actual != today {
		return fmt.Errorf("expected field %q to be today (%s), got %q", field, today, actual)
	}
	return nil
}

func (s *StepsContext) theResponseShouldListJobs(count int) error {
	var jobList []model.Job
	if err := json.Unmarshal(s.responseBody, &jobList); err != nil {
		return fmt.Errorf("failed to parse job list: %w (body: %s)", err, s.responseBody)
	}
	if len(jobList) != count {
		return fmt.Errorf("expected %d jobs, got %d", count, len(jobList))
	}
	return nil
}

func (s *StepsContext) theResponseMessageShouldBe(msg string) error {
	var payload struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(s.responseBody, &payload); err != nil {
		return fmt.Errorf("failed to parse error payload: %w (body: %s)", err, s.responseBody)
	}
	if payload.Msg != msg {
		return fmt.Errorf("expected message %q, got %q", msg, payload.Msg)
	}
	return nil
}

// Helpers

// responseField pulls a single top-level field out of the response body and
// renders it as a string.
func (s *StepsContext) responseField(field string) (string, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(s.responseBody, &payload); err != nil {
		return "", fmt.Errorf("failed to parse response: %w (body: %s)", err, s.responseBody)
	}
	value, ok := payload[field]
	if !ok || value == nil {
		return "", fmt.Errorf("response has no field %q: %s", field, s.responseBody)
	}
	return fmt.Sprintf("%v", value), nil
}

// doRequest issues a request as the current user and records the response.
func (s *StepsContext) doRequest(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok, ok := s.tokens[s.currentUser]; ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return s.record(s.tc.HTTPClient.Do(req))
}

// postJSON issues an unauthenticated (or token-bearing) POST and returns the
// status and body without touching the recorded response.
func (s *StepsContext) postJSON(path string, payload interface{}, tok string) (int, []byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequest(http.MethodPost, s.tc.ServerURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := s.tc.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, respBody, nil
}

// record stores the response and its body for later assertion steps.
func (s *StepsContext) record(resp *http.Response, err error) error {
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return readErr
	}
	s.response = resp
	s.responseBody = body
	return nil
}
