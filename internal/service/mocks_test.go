package service

import (
	"context"
	"io"

	"wedding-portal-be/pkg/llm"

	"github.com/stretchr/testify/mock"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, int64, error) {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendPortalLink(toEmail, guestName, coupleNames, portalLink string) error {
	return m.Called(toEmail, guestName, coupleNames, portalLink).Error(0)
}

type mockLLM struct {
	mock.Mock
}

func (m *mockLLM) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

func (m *mockLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
