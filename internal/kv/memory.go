package kv

// Memory is an in-memory Slots implementation for tests. Errors can be
// injected to exercise storage-medium failure paths.
type Memory struct {
	Data     map[string]string
	ReadErr  error // returned by every Get when non-nil
	WriteErr error // returned by every Set/Delete when non-nil
}

// NewMemory returns an empty Memory slot store.
func NewMemory() *Memory {
	return &Memory{Data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	if m.ReadErr != nil {
		return "", false, m.ReadErr
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Data[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	delete(m.Data, key)
	return nil
}
