package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/hangul/internal/config"
	"github.com/npillmayer/hangul/internal/tracing"
	"golang.org/x/text/language"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{config.EnvMode, config.EnvCompat, config.EnvTrace} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestRun(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	clearEnv(t)
	//
	for i, c := range []struct {
		args   []string
		status int
		output string
	}{
		{[]string{"ㄷㅏㄹㄱ"}, 0, "닭\n"},
		{[]string{"-d", "닭"}, 0, "ㄷㅏㄺ\n"},
		{[]string{"-compat=false", "\u1100\u1161\u1102\u1161\u1103\u1161"}, 0, "가나다\n"},
		{[]string{"-d", "-compat=false", "각"}, 0, "\u1100\u1161\u11A8\n"},
		{[]string{"-trace", "debug", "hello"}, 0, "hello\n"},
		{[]string{""}, 0, "\n"},
	} {
		var stdout, stderr bytes.Buffer
		status := run(c.args, &stdout, &stderr)
		if status != c.status {
			t.Errorf("test #%d: expected exit status %d, have %d (%s)", i, c.status, status, stderr.String())
		}
		if stdout.String() != c.output {
			t.Errorf("test #%d: expected output %q, have %q", i, c.output, stdout.String())
		}
	}
}

func TestRunModeFromEnvironment(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	clearEnv(t)
	t.Setenv(config.EnvMode, "decompose")
	//
	var stdout, stderr bytes.Buffer
	if status := run([]string{"닭"}, &stdout, &stderr); status != 0 {
		t.Fatalf("expected exit status 0, have %d (%s)", status, stderr.String())
	}
	if stdout.String() != "ㄷㅏㄺ\n" {
		t.Errorf("expected decomposition, have %q", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	clearEnv(t)
	//
	var stdout, stderr bytes.Buffer
	if status := run(nil, &stdout, &stderr); status != 1 {
		t.Errorf("expected exit status 1 for missing input, have %d", status)
	}
	if !strings.Contains(stderr.String(), ErrMissingInput.Error()) {
		t.Errorf("expected message %q, have %q", ErrMissingInput, stderr.String())
	}
	stderr.Reset()
	if status := run([]string{"-x", "가"}, &stdout, &stderr); status != 2 {
		t.Errorf("expected exit status 2 for unknown flag, have %d", status)
	}
	if status := run([]string{"-trace", "loud", "가"}, &stdout, &stderr); status != 2 {
		t.Errorf("expected exit status 2 for unknown trace level, have %d", status)
	}
	t.Setenv(config.EnvMode, "scramble")
	if status := run([]string{"가"}, &stdout, &stderr); status != 1 {
		t.Errorf("expected exit status 1 for invalid configuration, have %d", status)
	}
	if stdout.Len() != 0 {
		t.Errorf("expected no output, have %q", stdout.String())
	}
}

func TestUsageMessage(t *testing.T) {
	if msg := usageMessage(language.Make("ko-KR")); !strings.HasPrefix(msg, "사용법") {
		t.Errorf("expected Korean usage message, have %q", msg)
	}
	if msg := usageMessage(language.Make("de-AT")); !strings.HasPrefix(msg, "usage") {
		t.Errorf("expected English usage message as fallback, have %q", msg)
	}
	if msg := usageMessage(language.Make("en-GB")); !strings.HasPrefix(msg, "usage") {
		t.Errorf("expected English usage message, have %q", msg)
	}
}
