package mocks

// MockCache はテスト用のキャッシュモック
type MockCache struct {
	Entries  map[string][]byte
	GetError error
	SetError error
	Hits     int
	Deleted  []string
}

// NewMockCache は新しいMockCacheを作成します
func NewMockCache() *MockCache {
	return &MockCache{
		Entries: make(map[string][]byte),
	}
}

// Get はキーに対応する値を返します
func (c *MockCache) Get(key string) ([]byte, bool, error) {
	if c.GetError != nil {
		return nil, false, c.GetError
	}
	value, ok := c.Entries[key]
	if ok {
		c.Hits++
	}
	return value, ok, nil
}

// Set はキーに値を保存します
func (c *MockCache) Set(key string, value []byte) error {
	if c.SetError != nil {
		return c.SetError
	}
	c.Entries[key] = value
	return nil
}

// Delete はキーを削除します
func (c *MockCache) Delete(key string) error {
	c.Deleted = append(c.Deleted, key)
	delete(c.Entries, key)
	return nil
}
