package userservice

// FakeHasher is a func-field fake for the password hasher.
type FakeHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) bool
}

func (f *FakeHasher) Hash(password string) (string, error) {
	if f.HashFunc != nil {
		return f.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (f *FakeHasher) Verify(password, hash string) bool {
	if f.VerifyFunc != nil {
		return f.VerifyFunc(password, hash)
	}
	return hash == "hashed:"+password
}
