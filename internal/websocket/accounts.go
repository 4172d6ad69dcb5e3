package websocket

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/luciancaetano/gateprobe"
)

type account struct {
	uid  int64
	hash []byte
}

// accountStore is the gate's in-memory account table.
type accountStore struct {
	mu      sync.Mutex
	byName  map[string]account
	nextUID int64
	cost    int
}

func newAccountStore(firstUID int64) *accountStore {
	if firstUID <= 0 {
		firstUID = 1
	}
	return &accountStore{
		byName:  make(map[string]account),
		nextUID: firstUID,
		cost:    bcrypt.MinCost,
	}
}

// register creates the account and returns its uid, or CodeDuplicateAccount.
func (a *accountStore) register(name, password string) (int64, int32, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost)
	if err != nil {
		return 0, 0, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.byName[name]; ok {
		return 0, gateprobe.CodeDuplicateAccount, nil
	}
	uid := a.nextUID
	a.nextUID++
	a.byName[name] = account{uid: uid, hash: hash}
	return uid, gateprobe.CodeSuccess, nil
}

// authenticate checks the credentials and returns the uid on success.
func (a *accountStore) authenticate(name, password string) (int64, int32) {
	a.mu.Lock()
	acct, ok := a.byName[name]
	a.mu.Unlock()

	if !ok {
		return 0, gateprobe.CodeAccountNotFound
	}
	if bcrypt.CompareHashAndPassword(acct.hash, []byte(password)) != nil {
		return 0, gateprobe.CodeWrongPassword
	}
	return acct.uid, gateprobe.CodeSuccess
}

func (a *accountStore) len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.byName)
}
