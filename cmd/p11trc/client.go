package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/peterbourgon/p11trc/ck"
)

// client makes PKCS#11 calls through a function table, and turns the
// statuses into errors.
type client struct {
	fl *ck.FunctionList
}

func check(function string, rv ck.RV) error {
	if err := rv.Err(); err != nil {
		return fmt.Errorf("%s: %w", function, err)
	}
	return nil
}

func (c *client) initialize() error {
	return check("C_Initialize", c.fl.Initialize(nil))
}

func (c *client) finalize() error {
	return check("C_Finalize", c.fl.Finalize(nil))
}

func (c *client) info() (ck.Info, error) {
	var info ck.Info
	return info, check("C_GetInfo", c.fl.GetInfo(&info))
}

func (c *client) slots(tokenPresent bool) ([]ck.SlotID, error) {
	present := ck.CK_FALSE
	if tokenPresent {
		present = ck.CK_TRUE
	}

	var n ck.ULong
	if err := check("C_GetSlotList", c.fl.GetSlotList(present, nil, &n)); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	slots := make([]ck.SlotID, n)
	if err := check("C_GetSlotList", c.fl.GetSlotList(present, &slots[0], &n)); err != nil {
		return nil, err
	}
	return slots[:n], nil
}

func (c *client) slotInfo(slot ck.SlotID) (ck.SlotInfo, error) {
	var info ck.SlotInfo
	return info, check("C_GetSlotInfo", c.fl.GetSlotInfo(slot, &info))
}

func (c *client) tokenInfo(slot ck.SlotID) (ck.TokenInfo, error) {
	var info ck.TokenInfo
	return info, check("C_GetTokenInfo", c.fl.GetTokenInfo(slot, &info))
}

func (c *client) mechanisms(slot ck.SlotID) ([]ck.MechanismType, error) {
	var n ck.ULong
	if err := check("C_GetMechanismList", c.fl.GetMechanismList(slot, nil, &n)); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	mechs := make([]ck.MechanismType, n)
	if err := check("C_GetMechanismList", c.fl.GetMechanismList(slot, &mechs[0], &n)); err != nil {
		return nil, err
	}
	return mechs[:n], nil
}

func (c *client) mechanismInfo(slot ck.SlotID, m ck.MechanismType) (ck.MechanismInfo, error) {
	var info ck.MechanismInfo
	return info, check("C_GetMechanismInfo", c.fl.GetMechanismInfo(slot, m, &info))
}

func (c *client) openSession(slot ck.SlotID, rw bool) (ck.SessionHandle, error) {
	flags := ck.CKF_SERIAL_SESSION
	if rw {
		flags |= ck.CKF_RW_SESSION
	}
	var h ck.SessionHandle
	return h, check("C_OpenSession", c.fl.OpenSession(slot, flags, nil, nil, &h))
}

func (c *client) closeSession(h ck.SessionHandle) error {
	return check("C_CloseSession", c.fl.CloseSession(h))
}

func (c *client) sessionInfo(h ck.SessionHandle) (ck.SessionInfo, error) {
	var info ck.SessionInfo
	return info, check("C_GetSessionInfo", c.fl.GetSessionInfo(h, &info))
}

func (c *client) login(h ck.SessionHandle, userType ck.UserType, pin []byte) error {
	var p *byte
	if len(pin) > 0 {
		p = &pin[0]
	}
	return check("C_Login", c.fl.Login(h, userType, p, ck.ULong(len(pin))))
}

func (c *client) logout(h ck.SessionHandle) error {
	return check("C_Logout", c.fl.Logout(h))
}

// digestChunkSize is the most data passed to a single C_DigestUpdate.
const digestChunkSize = 32 * 1024

// digest reads r to EOF and digests it on the token. It returns the digest
// and the number of bytes read. On error, the digest operation may still be
// active, and the session should be closed.
func (c *client) digest(h ck.SessionHandle, m ck.MechanismType, r io.Reader) ([]byte, int64, error) {
	mech := ck.Mechanism{Mechanism: m}
	if err := check("C_DigestInit", c.fl.DigestInit(h, &mech)); err != nil {
		return nil, 0, err
	}

	var (
		buf   = make([]byte, digestChunkSize)
		total int64
	)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			total += int64(n)
			if err := check("C_DigestUpdate", c.fl.DigestUpdate(h, &buf[0], ck.ULong(n))); err != nil {
				return nil, total, err
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, total, fmt.Errorf("read: %w", err)
		}
	}

	var size ck.ULong
	if err := check("C_DigestFinal", c.fl.DigestFinal(h, nil, &size)); err != nil {
		return nil, total, err
	}
	sum := make([]byte, size)
	if size == 0 {
		return sum, total, nil
	}
	if err := check("C_DigestFinal", c.fl.DigestFinal(h, &sum[0], &size)); err != nil {
		return nil, total, err
	}
	return sum[:size], total, nil
}

func (c *client) random(h ck.SessionHandle, n int) ([]byte, error) {
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if err := check("C_GenerateRandom", c.fl.GenerateRandom(h, &buf[0], ck.ULong(n))); err != nil {
		return nil, err
	}
	return buf, nil
}
