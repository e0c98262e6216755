package mocks

import (
	"context"
	"errors"

	"github.com/shiroemons/go-lyrprep/internal/lyrprep/models"
)

// MockLyricsSource はテスト用の歌詞ソースモック
type MockLyricsSource struct {
	Results     []models.Record
	Records     map[int]models.Record
	Error       error
	SearchCalls []models.Query
	GetCalls    []int
}

// NewMockLyricsSource は新しいMockLyricsSourceを作成します
func NewMockLyricsSource() *MockLyricsSource {
	return &MockLyricsSource{
		Records: make(map[int]models.Record),
	}
}

// Search は設定された検索結果を返します
func (s *MockLyricsSource) Search(ctx context.Context, query models.Query) ([]models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.SearchCalls = append(s.SearchCalls, query)
	if s.Error != nil {
		return nil, s.Error
	}
	return s.Results, nil
}

// Get はIDに対応するレコードを返します
func (s *MockLyricsSource) Get(ctx context.Context, id int) (*models.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.GetCalls = append(s.GetCalls, id)
	if s.Error != nil {
		return nil, s.Error
	}
	record, ok := s.Records[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &record, nil
}
