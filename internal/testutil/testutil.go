// Package testutil holds fixtures shared by the service, seeder and controller tests.
package testutil

import (
	"context"
	"sync"
	"testing"

	"ai-productivity-be/internal/seeder"
	"ai-productivity-be/pkg/database"
	"ai-productivity-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private in-memory SQLite database with the schema applied.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLiteDB("file:"+uuid.NewString()+"?mode=memory&cache=shared", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, seeder.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// FakeProvider records every prompt and answers with Response or Err.
type FakeProvider struct {
	mu       sync.Mutex
	Response string
	Err      error
	Prompts  []string
}

var _ llm.LLMProvider = &FakeProvider{}

func (f *FakeProvider) Name() string {
	return "fake"
}

func (f *FakeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	var last string
	if len(history) > 0 {
		last = history[len(history)-1].Content
	}
	return f.Generate(ctx, last, opts...)
}

func (f *FakeProvider) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Prompts = append(f.Prompts, prompt)
	if f.Err != nil {
		return "", f.Err
	}
	return f.Response, nil
}

func (f *FakeProvider) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Prompts)
}
