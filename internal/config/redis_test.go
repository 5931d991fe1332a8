package config

import (
	"strings"
	"testing"
)

func TestSetupRedis_EmptyURLDisables(t *testing.T) {
	client, err := SetupRedis(&RedisConfig{URL: ""}, nil)
	if err != nil {
		t.Fatalf("SetupRedis: %v", err)
	}
	if client != nil {
		t.Error("no URL must return a nil client, not a dangling connection")
	}

	client, err = SetupRedis(nil, nil)
	if err != nil || client != nil {
		t.Errorf("nil config should behave like no URL; got (%v, %v)", client, err)
	}
}

func TestSetupRedis_RejectsBadURL(t *testing.T) {
	_, err := SetupRedis(&RedisConfig{URL: "not-a-url"}, nil)
	if err == nil {
		t.Fatal("expected error for malformed redis url")
	}
	if !strings.Contains(err.Error(), "parse redis url") {
		t.Errorf("error = %v; want parse failure", err)
	}
}

func TestSetupRedis_RejectsBadDialTimeout(t *testing.T) {
	_, err := SetupRedis(&RedisConfig{
		URL:         "redis://localhost:6379/0",
		DialTimeout: "soon",
	}, nil)
	if err == nil {
		t.Fatal("expected error for malformed dial timeout")
	}
	if !strings.Contains(err.Error(), "redis.dial_timeout") {
		t.Errorf("error = %v; want dial timeout failure", err)
	}
}
