package main

import (
	"bytes"
	"context"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterbourgon/p11trc/ck"
)

type testRun struct {
	stdout, stderr bytes.Buffer
	err            error
}

func runExec(t *testing.T, stdin string, args ...string) *testRun {
	t.Helper()
	var r testRun
	r.err = exec(context.Background(), strings.NewReader(stdin), &r.stdout, &r.stderr, args)
	return &r
}

func TestInfo(t *testing.T) {
	r := runExec(t, "", "--fake", "info")
	require.NoError(t, r.err)
	require.Contains(t, r.stdout.String(), "Cryptoki version")
	require.Contains(t, r.stdout.String(), "2.40")
	require.Contains(t, r.stdout.String(), "in-memory test provider")
	require.NotContains(t, r.stdout.String(), "Calling C_GetInfo")
	require.Regexp(t, `Delegate +p11fake\n`, r.stdout.String())
	require.Regexp(t, `Trace file +\(disabled\)\n`, r.stdout.String())
	require.Regexp(t, `Trace flags +0x01\n`, r.stdout.String())
}

func TestEnvironmentFlags(t *testing.T) {
	t.Setenv("P11TRC_FAKE", "true")
	t.Setenv("P11TRC_LOG", "debug")

	r := runExec(t, "", "info")
	require.NoError(t, r.err)
	require.Contains(t, r.stdout.String(), "in-memory test provider")
	require.Contains(t, r.stderr.String(), "delegate loaded")
}

func TestTraceToStdout(t *testing.T) {
	r := runExec(t, "", "--fake", "--trace-flags", "22", "info")
	require.NoError(t, r.err)
	require.Contains(t, r.stdout.String(), "PKCS11-LOGGER 2.2.0\n")
	require.Contains(t, r.stdout.String(), "Calling C_Initialize\nInput\n pInitArgs: (nil)\n")
	require.Contains(t, r.stdout.String(), "Returned from C_GetInfo\nOutput\n")
	require.Contains(t, r.stdout.String(), "Returned from C_Finalize\nReturning 0 (CKR_OK)\n")
}

func TestTraceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")

	r := runExec(t, "", "--fake", "--trace-file", path, "slots")
	require.NoError(t, r.err)

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(buf), "Calling C_GetSlotList")
	require.Contains(t, string(buf), "Calling C_GetTokenInfo")
	require.Contains(t, string(buf), "  label: p11fake")
}

func TestSlots(t *testing.T) {
	r := runExec(t, "", "--fake", "slots")
	require.NoError(t, r.err)
	require.Contains(t, r.stdout.String(), "SLOT")
	require.Contains(t, r.stdout.String(), "p11fake slot")
	require.Contains(t, r.stdout.String(), "initialized,login,pin,rng")
}

func TestMechanisms(t *testing.T) {
	r := runExec(t, "", "--fake", "mechanisms", "--slot", "0")
	require.NoError(t, r.err)
	require.Contains(t, r.stdout.String(), "CKM_SHA256")
	require.Contains(t, r.stdout.String(), "0x00000250")
	require.Contains(t, r.stdout.String(), "digest")

	r = runExec(t, "", "--fake", "mechanisms", "--slot", "7")
	require.ErrorIs(t, r.err, ck.CKR_SLOT_ID_INVALID.Err())
}

func TestDigest(t *testing.T) {
	dir := t.TempDir()

	var (
		files = map[string][]byte{
			"empty": {},
			"small": []byte("hello, world\n"),
			"large": bytes.Repeat([]byte("0123456789abcdef"), 10000),
		}
		args = []string{"--fake", "digest", "--jobs", "2"}
		want []string
	)
	for _, name := range []string{"empty", "small", "large"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, files[name], 0o644))
		sum := sha256.Sum256(files[name])
		want = append(want, hex.EncodeToString(sum[:])+"  "+path)
		args = append(args, path)
	}

	r := runExec(t, "", args...)
	require.NoError(t, r.err)
	require.Equal(t, strings.Join(want, "\n")+"\n", r.stdout.String())
}

func TestDigestStdin(t *testing.T) {
	r := runExec(t, "abc", "--fake", "digest", "-m", "CKM_SHA_1")
	require.NoError(t, r.err)

	sum := sha1.Sum([]byte("abc"))
	require.Equal(t, hex.EncodeToString(sum[:])+"  -\n", r.stdout.String())
}

func TestDigestErrors(t *testing.T) {
	r := runExec(t, "", "--fake", "digest", "-m", "NOPE", "x")
	require.ErrorContains(t, r.err, `unknown mechanism "NOPE"`)

	r = runExec(t, "", "--fake", "digest", "-m", "CKM_MD5")
	require.ErrorIs(t, r.err, ck.CKR_MECHANISM_INVALID.Err())

	r = runExec(t, "", "--fake", "digest", filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, r.err, os.ErrNotExist)
}

func TestRandom(t *testing.T) {
	r := runExec(t, "", "--fake", "random", "-n", "16")
	require.NoError(t, r.err)

	out := strings.TrimSpace(r.stdout.String())
	require.Len(t, out, 32)
	_, err := hex.DecodeString(out)
	require.NoError(t, err)

	r = runExec(t, "", "--fake", "random", "-n", "5", "-e", "raw")
	require.NoError(t, r.err)
	require.Equal(t, 5, r.stdout.Len())
}

func TestLogin(t *testing.T) {
	r := runExec(t, "", "--fake", "login", "--pin", "1234")
	require.NoError(t, r.err)
	require.Contains(t, r.stdout.String(), "logged in:")
	require.Contains(t, r.stdout.String(), "CKS_RO_USER_FUNCTIONS")

	r = runExec(t, "999999\n", "--fake", "login")
	require.ErrorIs(t, r.err, ck.CKR_PIN_INCORRECT.Err())
	require.Contains(t, r.stdout.String(), "login failed:")

	r = runExec(t, "246810\n", "--fake", "--fake-pin", "246810", "login")
	require.NoError(t, r.err)
}

func TestLoginPINHiddenInTrace(t *testing.T) {
	r := runExec(t, "", "--fake", "--trace-flags", "22", "login", "--pin", "1234")
	require.NoError(t, r.err)
	require.Contains(t, r.stdout.String(), " *pPin: *** Intentionally hidden ***\n")

	r = runExec(t, "", "--fake", "--trace-flags", "30", "login", "--pin", "1234")
	require.NoError(t, r.err)
	require.Contains(t, r.stdout.String(), " *pPin: 1234\n")
}

func TestCalls(t *testing.T) {
	r := runExec(t, "", "--fake", "calls", "--limit", "3")
	require.NoError(t, r.err)

	out := r.stdout.String()
	for _, function := range []string{"C_Initialize", "C_GetInfo", "C_GetSlotList", "C_GetMechanismInfo", "C_Finalize"} {
		require.Contains(t, out, function)
	}

	sections := strings.Split(out, "\n\n")
	require.Len(t, sections, 2)
	require.Len(t, strings.Split(strings.TrimSpace(sections[1]), "\n"), 1+3)
	require.Contains(t, sections[1], "C_Finalize")
}

func TestMetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p11trc.prom")

	r := runExec(t, "", "--fake", "--metrics", path, "info")
	require.NoError(t, r.err)

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(buf), `p11trc_calls_total{function="C_GetInfo",rv="CKR_OK"} 1`)
	require.Contains(t, string(buf), "p11trc_call_duration_seconds_bucket")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	trace := filepath.Join(dir, "trace.log")
	config := filepath.Join(dir, "p11trc.toml")
	require.NoError(t, os.WriteFile(config, []byte("fake = true\ntrace-file = \""+trace+"\"\n"), 0o644))

	r := runExec(t, "", "--config", config, "random")
	require.NoError(t, r.err)

	buf, err := os.ReadFile(trace)
	require.NoError(t, err)
	require.Contains(t, string(buf), "Calling C_GenerateRandom")
}

func TestUsageErrors(t *testing.T) {
	r := runExec(t, "")
	require.NoError(t, r.err)
	require.Contains(t, r.stderr.String(), "SUBCOMMANDS")

	r = runExec(t, "", "--fake", "--library", "/usr/lib/libfoo.so", "info")
	require.ErrorContains(t, r.err, "mutually exclusive")

	r = runExec(t, "", "--library", `"/usr/lib/libfoo.so"`, "info")
	require.ErrorContains(t, r.err, "without enclosing quotes")
}

func TestDiagnosticLog(t *testing.T) {
	r := runExec(t, "", "--fake", "--log", "debug", "digest")
	require.NoError(t, r.err)
	require.Contains(t, r.stderr.String(), "digest complete")
	require.Contains(t, r.stderr.String(), "delegate loaded")
}
