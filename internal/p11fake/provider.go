// Package p11fake is a small in-memory PKCS#11 provider. It supports enough of
// the interface to exercise a proxy end to end: informational calls, sessions,
// login, digests, random data, and a simple object store. Everything else
// returns CKR_FUNCTION_NOT_SUPPORTED.
package p11fake

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"sync"
	"unsafe"

	"github.com/peterbourgon/p11trc/ck"
)

// Config for a fake provider. Zero values are replaced by reasonable defaults.
type Config struct {
	Slots      []ck.SlotID // default is a single slot, 0
	TokenLabel string      // default "p11fake"
	UserPIN    string      // default "1234"
	SOPIN      string      // default "87654321"
}

func (cfg *Config) sanitize() {
	if len(cfg.Slots) <= 0 {
		cfg.Slots = []ck.SlotID{0}
	}
	if cfg.TokenLabel == "" {
		cfg.TokenLabel = "p11fake"
	}
	if cfg.UserPIN == "" {
		cfg.UserPIN = "1234"
	}
	if cfg.SOPIN == "" {
		cfg.SOPIN = "87654321"
	}
}

// Provider is the fake provider state.
type Provider struct {
	cfg Config

	mtx         sync.Mutex
	initialized bool
	loggedIn    map[ck.SlotID]ck.UserType
	sessions    map[ck.SessionHandle]*session
	nextSession ck.SessionHandle
	objects     map[ck.ObjectHandle]*object
	nextObject  ck.ObjectHandle
}

type session struct {
	slot    ck.SlotID
	flags   ck.Flags
	digest  hash.Hash
	found   []ck.ObjectHandle
	finding bool
}

type object struct {
	attrs map[ck.AttributeType][]byte
}

// Mechanisms supported by every slot.
var Mechanisms = []ck.MechanismType{ck.CKM_SHA_1, ck.CKM_SHA256, ck.CKM_SHA384, ck.CKM_SHA512}

// New returns a fake provider.
func New(cfg Config) *Provider {
	cfg.sanitize()
	return &Provider{
		cfg:         cfg,
		loggedIn:    map[ck.SlotID]ck.UserType{},
		sessions:    map[ck.SessionHandle]*session{},
		nextSession: 1,
		objects:     map[ck.ObjectHandle]*object{},
		nextObject:  1,
	}
}

// FunctionList returns a function list bound to the provider. Callers may
// replace individual fields to inject specific behavior.
func (p *Provider) FunctionList() *ck.FunctionList {
	fl := &ck.FunctionList{
		Version:           ck.Version{Major: 2, Minor: 40},
		Initialize:        p.initialize,
		Finalize:          p.finalize,
		GetInfo:           p.getInfo,
		GetSlotList:       p.getSlotList,
		GetSlotInfo:       p.getSlotInfo,
		GetTokenInfo:      p.getTokenInfo,
		GetMechanismList:  p.getMechanismList,
		GetMechanismInfo:  p.getMechanismInfo,
		OpenSession:       p.openSession,
		CloseSession:      p.closeSession,
		CloseAllSessions:  p.closeAllSessions,
		GetSessionInfo:    p.getSessionInfo,
		Login:             p.login,
		Logout:            p.logout,
		CreateObject:      p.createObject,
		DestroyObject:     p.destroyObject,
		GetAttributeValue: p.getAttributeValue,
		FindObjectsInit:   p.findObjectsInit,
		FindObjects:       p.findObjects,
		FindObjectsFinal:  p.findObjectsFinal,
		DigestInit:        p.digestInit,
		Digest:            p.digest,
		DigestUpdate:      p.digestUpdate,
		DigestFinal:       p.digestFinal,
		SeedRandom:        p.seedRandom,
		GenerateRandom:    p.generateRandom,
	}
	ck.FillNotSupported(fl)
	return fl
}

func (p *Provider) initialize(initArgs unsafe.Pointer) ck.RV {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if p.initialized {
		return ck.CKR_CRYPTOKI_ALREADY_INITIALIZED
	}
	p.initialized = true
	return ck.CKR_OK
}

func (p *Provider) finalize(reserved unsafe.Pointer) ck.RV {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	if reserved != nil {
		return ck.CKR_ARGUMENTS_BAD
	}
	if !p.initialized {
		return ck.CKR_CRYPTOKI_NOT_INITIALIZED
	}
	p.initialized = false
	p.sessions = map[ck.SessionHandle]*session{}
	p.loggedIn = map[ck.SlotID]ck.UserType{}
	return ck.CKR_OK
}

func (p *Provider) getInfo(info *ck.Info) ck.RV {
	if info == nil {
		return ck.CKR_ARGUMENTS_BAD
	}
	*info = ck.Info{
		CryptokiVersion: ck.Version{Major: 2, Minor: 40},
		LibraryVersion:  ck.Version{Major: 1, Minor: 0},
	}
	ck.PadBlank(info.ManufacturerID[:], "p11trc")
	ck.PadBlank(info.LibraryDescription[:], "in-memory test provider")
	return ck.CKR_OK
}

func (p *Provider) getSlotList(tokenPresent ck.Bool, slotList *ck.SlotID, count *ck.ULong) ck.RV {
	if count == nil {
		return ck.CKR_ARGUMENTS_BAD
	}
	n := ck.ULong(len(p.cfg.Slots))
	if slotList == nil {
		*count = n
		return ck.CKR_OK
	}
	if *count < n {
		*count = n
		return ck.CKR_BUFFER_TOO_SMALL
	}
	copy(unsafe.Slice(slotList, n), p.cfg.Slots)
	*count = n
	return ck.CKR_OK
}

func (p *Provider) hasSlot(slot ck.SlotID) bool {
	for _, s := range p.cfg.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

func (p *Provider) getSlotInfo(slot ck.SlotID, info *ck.SlotInfo) ck.RV {
	if !p.hasSlot(slot) {
		return ck.CKR_SLOT_ID_INVALID
	}
	if info == nil {
		return ck.CKR_ARGUMENTS_BAD
	}
	*info = ck.SlotInfo{
		Flags:           ck.CKF_TOKEN_PRESENT,
		HardwareVersion: ck.Version{Major: 1},
		FirmwareVersion: ck.Version{Major: 1},
	}
	ck.PadBlank(info.SlotDescription[:], "p11fake slot")
	ck.PadBlank(info.ManufacturerID[:], "p11trc")
	return ck.CKR_OK
}

func (p *Provider) getTokenInfo(slot ck.SlotID, info *ck.TokenInfo) ck.RV {
	if !p.hasSlot(slot) {
		return ck.CKR_SLOT_ID_INVALID
	}
	if info == nil {
		return ck.CKR_ARGUMENTS_BAD
	}

	p.mtx.Lock()
	var sessions, rwSessions ck.ULong
	for _, s := range p.sessions {
		if s.slot != slot {
			continue
		}
		sessions++
		if s.flags&ck.CKF_RW_SESSION != 0 {
			rwSessions++
		}
	}
	p.mtx.Unlock()

	*info = ck.TokenInfo{
		Flags:              ck.CKF_RNG | ck.CKF_LOGIN_REQUIRED | ck.CKF_USER_PIN_INITIALIZED | ck.CKF_TOKEN_INITIALIZED,
		MaxSessionCount:    ck.CK_EFFECTIVELY_INFINITE,
		SessionCount:       sessions,
		MaxRwSessionCount:  ck.CK_EFFECTIVELY_INFINITE,
		RwSessionCount:     rwSessions,
		MaxPinLen:          32,
		MinPinLen:          4,
		TotalPublicMemory:  ck.CK_UNAVAILABLE_INFORMATION,
		FreePublicMemory:   ck.CK_UNAVAILABLE_INFORMATION,
		TotalPrivateMemory: ck.CK_UNAVAILABLE_INFORMATION,
		FreePrivateMemory:  ck.CK_UNAVAILABLE_INFORMATION,
		HardwareVersion:    ck.Version{Major: 1},
		FirmwareVersion:    ck.Version{Major: 1},
	}
	ck.PadBlank(info.Label[:], p.cfg.TokenLabel)
	ck.PadBlank(info.ManufacturerID[:], "p11trc")
	ck.PadBlank(info.Model[:], "p11fake")
	ck.PadBlank(info.SerialNumber[:], "0000000000000001")
	return ck.CKR_OK
}

func (p *Provider) getMechanismList(slot ck.SlotID, list *ck.MechanismType, count *ck.ULong) ck.RV {
	if !p.hasSlot(slot) {
		return ck.CKR_SLOT_ID_INVALID
	}
	if count == nil {
		return ck.CKR_ARGUMENTS_BAD
	}
	n := ck.ULong(len(Mechanisms))
	if list == nil {
		*count = n
		return ck.CKR_OK
	}
	if *count < n {
		*count = n
		return ck.CKR_BUFFER_TOO_SMALL
	}
	copy(unsafe.Slice(list, n), Mechanisms)
	*count = n
	return ck.CKR_OK
}

func (p *Provider) getMechanismInfo(slot ck.SlotID, mech ck.MechanismType, info *ck.MechanismInfo) ck.RV {
	if !p.hasSlot(slot) {
		return ck.CKR_SLOT_ID_INVALID
	}
	if newHash(mech) == nil {
		return ck.CKR_MECHANISM_INVALID
	}
	if info == nil {
		return ck.CKR_ARGUMENTS_BAD
	}
	*info = ck.MechanismInfo{Flags: ck.CKF_DIGEST}
	return ck.CKR_OK
}

func (p *Provider) openSession(slot ck.SlotID, flags ck.Flags, application, notify unsafe.Pointer, handle *ck.SessionHandle) ck.RV {
	if !p.hasSlot(slot) {
		return ck.CKR_SLOT_ID_INVALID
	}
	if flags&ck.CKF_SERIAL_SESSION == 0 {
		return ck.CKR_SESSION_PARALLEL_NOT_SUPPORTED
	}
	if handle == nil {
		return ck.CKR_ARGUMENTS_BAD
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	if !p.initialized {
		return ck.CKR_CRYPTOKI_NOT_INITIALIZED
	}

	h := p.nextSession
	p.nextSession++
	p.sessions[h] = &session{slot: slot, flags: flags}
	*handle = h
	return ck.CKR_OK
}

func (p *Provider) closeSession(h ck.SessionHandle) ck.RV {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	s, ok := p.sessions[h]
	if !ok {
		return ck.CKR_SESSION_HANDLE_INVALID
	}
	delete(p.sessions, h)
	p.logoutIfIdle(s.slot)
	return ck.CKR_OK
}

func (p *Provider) closeAllSessions(slot ck.SlotID) ck.RV {
	if !p.hasSlot(slot) {
		return ck.CKR_SLOT_ID_INVALID
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	for h, s := range p.sessions {
		if s.slot == slot {
			delete(p.sessions, h)
		}
	}
	delete(p.loggedIn, slot)
	return ck.CKR_OK
}

// logoutIfIdle drops the login state of a slot with no open sessions. Caller
// must hold the lock.
func (p *Provider) logoutIfIdle(slot ck.SlotID) {
	for _, s := range p.sessions {
		if s.slot == slot {
			return
		}
	}
	delete(p.loggedIn, slot)
}

func (p *Provider) getSessionInfo(h ck.SessionHandle, info *ck.SessionInfo) ck.RV {
	if info == nil {
		return ck.CKR_ARGUMENTS_BAD
	}

	p.mtx.Lock()
	defer p.mtx.Unlock()

	s, ok := p.sessions[h]
	if !ok {
		return ck.CKR_SESSION_HANDLE_INVALID
	}

	rw := s.flags&ck.CKF_RW_SESSION != 0
	user, loggedIn := p.loggedIn[s.slot]

	var state ck.State
	switch {
	case loggedIn && user == ck.CKU_SO:
		state = ck.CKS_RW_SO_FUNCTIONS
	case loggedIn && rw:
		state = ck.CKS_RW_USER_FUNCTIONS
	case loggedIn:
		state = ck.CKS_RO_USER_FUNCTIONS
	case rw:
		state = ck.CKS_RW_PUBLIC_SESSION
	default:
		state = ck.CKS_RO_PUBLIC_SESSION
	}

	*info = ck.SessionInfo{SlotID: s.slot, State: state, Flags: s.flags}
	return ck.CKR_OK
}

func (p *Provider) login(h ck.SessionHandle, userType ck.UserType, pin *byte, pinLen ck.ULong) ck.RV {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	s, ok := p.sessions[h]
	if !ok {
		return ck.CKR_SESSION_HANDLE_INVALID
	}

	var want string
	switch userType {
	case ck.CKU_USER:
		want = p.cfg.UserPIN
	case ck.CKU_SO:
		want = p.cfg.SOPIN
	default:
		return ck.CKR_USER_TYPE_INVALID
	}

	if _, already := p.loggedIn[s.slot]; already {
		return ck.CKR_USER_ALREADY_LOGGED_IN
	}

	if pin == nil || string(unsafe.Slice(pin, pinLen)) != want {
		return ck.CKR_PIN_INCORRECT
	}

	p.loggedIn[s.slot] = userType
	return ck.CKR_OK
}

func (p *Provider) logout(h ck.SessionHandle) ck.RV {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	s, ok := p.sessions[h]
	if !ok {
		return ck.CKR_SESSION_HANDLE_INVALID
	}
	if _, ok := p.loggedIn[s.slot]; !ok {
		return ck.CKR_USER_NOT_LOGGED_IN
	}
	delete(p.loggedIn, s.slot)
	return ck.CKR_OK
}

func (p *Provider) seedRandom(h ck.SessionHandle, seed *byte, seedLen ck.ULong) ck.RV {
	if !p.validSession(h) {
		return ck.CKR_SESSION_HANDLE_INVALID
	}
	return ck.CKR_RANDOM_SEED_NOT_SUPPORTED
}

func (p *Provider) generateRandom(h ck.SessionHandle, data *byte, n ck.ULong) ck.RV {
	if !p.validSession(h) {
		return ck.CKR_SESSION_HANDLE_INVALID
	}
	if data == nil && n > 0 {
		return ck.CKR_ARGUMENTS_BAD
	}
	if n == 0 {
		return ck.CKR_OK
	}
	if _, err := rand.Read(unsafe.Slice(data, n)); err != nil {
		return ck.CKR_FUNCTION_FAILED
	}
	return ck.CKR_OK
}

func (p *Provider) validSession(h ck.SessionHandle) bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	_, ok := p.sessions[h]
	return ok
}

func newHash(mech ck.MechanismType) hash.Hash {
	switch mech {
	case ck.CKM_SHA_1:
		return sha1.New()
	case ck.CKM_SHA256:
		return sha256.New()
	case ck.CKM_SHA384:
		return sha512.New384()
	case ck.CKM_SHA512:
		return sha512.New()
	default:
		return nil
	}
}
