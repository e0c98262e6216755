package mocks

// MockClipboard はテスト用のクリップボードモック
type MockClipboard struct {
	Text   string
	Writes int
	Error  error
}

// NewMockClipboard は新しいMockClipboardを作成します
func NewMockClipboard() *MockClipboard {
	return &MockClipboard{}
}

// WriteAll はクリップボードにテキストを書き込みます
func (c *MockClipboard) WriteAll(text string) error {
	if c.Error != nil {
		return c.Error
	}
	c.Text = text
	c.Writes++
	return nil
}
