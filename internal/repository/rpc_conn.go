package repository

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/btcsuite/btcd/rpcclient"
)

// NodeConnConfig describes how to reach croncoind.
type NodeConnConfig struct {
	// URL is the http endpoint of the node RPC interface.
	URL string
	// User/Password authenticate the RPC session. When empty, CookiePath is read.
	User     string
	Password string
	// CookiePath points at the node's generated .cookie file.
	CookiePath string
	// WalletName selects the wallet endpoint (/wallet/<name>). Empty targets
	// the top-level endpoint.
	WalletName string
}

// NewNodeClient builds an rpcclient.Client in HTTP POST mode from the config.
// Credentials resolve like croncoin-cli does: explicit user/password first,
// then the cookie file.
func NewNodeClient(cfg NodeConnConfig) (*rpcclient.Client, error) {
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	user, pass := cfg.User, cfg.Password
	if user == "" || pass == "" {
		user, pass, err = readCookie(cfg.CookiePath)
		if err != nil {
			return nil, err
		}
	}

	host := parsed.Host
	if cfg.WalletName != "" {
		host += "/wallet/" + cfg.WalletName
	}

	connCfg := &rpcclient.ConnConfig{
		Host:         host,
		User:         user,
		Pass:         pass,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(connCfg, nil)
}

// readCookie parses a "user:password" node cookie file.
func readCookie(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read rpc cookie %s: %w", path, err)
	}
	cookie := strings.TrimSpace(string(data))
	user, pass, found := strings.Cut(cookie, ":")
	if !found {
		return "", "", fmt.Errorf("rpc cookie %s is not user:password", path)
	}
	return user, pass, nil
}
