package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikov/simplenote-backend/internal/auth"
	"github.com/nikov/simplenote-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("Test User %s", suffix),
		email:    fmt.Sprintf("user_%s@example.com", suffix),
		password: "testpassword123",
	}
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns it with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

type registeredUser struct {
	User struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

// BuildAndAuthenticate registers the user through the API and returns the
// user plus the session cookie the server set.
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, *http.Cookie) {
	t.Helper()

	reqBody := map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var reg registeredUser
	if err := json.NewDecoder(resp.Body).Decode(&reg); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == auth.SessionCookieName {
			cookie = c
			break
		}
	}
	if cookie == nil {
		t.Fatalf("registration response did not set the %s cookie", auth.SessionCookieName)
	}

	user := &domain.User{
		ID:    reg.User.ID,
		Name:  reg.User.Name,
		Email: reg.User.Email,
	}

	return user, cookie
}

// DocumentBuilder creates test documents directly in the database
type DocumentBuilder struct {
	id      string
	owner   *domain.User
	title   string
	content json.RawMessage
	deleted bool
}

// NewDocumentBuilder creates a new DocumentBuilder with default values
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{
		id:      fmt.Sprintf("doc_%s", uuid.New().String()[:8]),
		title:   "Test Document",
		content: json.RawMessage(`{"type":"doc","blocks":[]}`),
	}
}

func (b *DocumentBuilder) WithID(id string) *DocumentBuilder {
	b.id = id
	return b
}

func (b *DocumentBuilder) WithOwner(user *domain.User) *DocumentBuilder {
	b.owner = user
	return b
}

func (b *DocumentBuilder) WithTitle(title string) *DocumentBuilder {
	b.title = title
	return b
}

func (b *DocumentBuilder) WithContent(content json.RawMessage) *DocumentBuilder {
	b.content = content
	return b
}

func (b *DocumentBuilder) Deleted() *DocumentBuilder {
	b.deleted = true
	return b
}

// Build creates the document in the database
func (b *DocumentBuilder) Build(t *testing.T, db *gorm.DB) *domain.Document {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.owner = user
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:        b.id,
		UserID:    b.owner.ID,
		Title:     b.title,
		Content:   domain.EncodeContent(b.content),
		CreatedAt: now,
		UpdatedAt: now,
		IsDeleted: b.deleted,
	}

	if err := db.Create(doc).Error; err != nil {
		t.Fatalf("failed to create document: %v", err)
	}

	return doc
}

// NewAuthenticatedRequest creates a JSON request carrying the session cookie
func NewAuthenticatedRequest(t *testing.T, method, url string, body interface{}, cookie *http.Cookie) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	return req
}

// DoRequest executes the request and fails the test on transport errors
func DoRequest(t *testing.T, req *http.Request) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}
