// Package resolver implements the DNS lookup port with miekg/dns.
package resolver

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
)

const (
	defaultTimeout = 5 * time.Second
	resolvConfPath = "/etc/resolv.conf"
)

// Options configures the resolver adapter.
type Options struct {
	Timeout time.Duration // per-exchange timeout; 0 means 5s
}

// Resolver performs A/AAAA lookups against explicit servers or the
// system resolver configuration.
type Resolver struct {
	client *dns.Client
}

// New returns a Resolver with the given options.
func New(opts *Options) *Resolver {
	timeout := defaultTimeout
	if opts != nil && opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	return &Resolver{client: &dns.Client{Timeout: timeout}}
}

// Resolve looks up the A and AAAA records of domain. With no servers
// given it falls back to the nameservers in /etc/resolv.conf. IPv4
// addresses come first so single-address consumers keep getting an
// IPv4 answer when one exists. An empty result without an error means
// the name currently has no addresses.
func (r *Resolver) Resolve(ctx context.Context, domain string, servers []string) ([]string, error) {
	targets, err := r.targets(servers)
	if err != nil {
		return nil, err
	}

	var addrs []string
	var errA, errAAAA error
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		out, err := r.query(ctx, domain, qtype, targets)
		if err != nil {
			if qtype == dns.TypeA {
				errA = err
			} else {
				errAAAA = err
			}
			continue
		}
		addrs = append(addrs, out...)
	}
	if len(addrs) == 0 && errA != nil && errAAAA != nil {
		return nil, errA
	}
	return addrs, nil
}

// targets normalizes the server list to host:port, defaulting the
// port to 53 and the list to the system resolver configuration.
func (r *Resolver) targets(servers []string) ([]string, error) {
	if len(servers) == 0 {
		cfg, err := dns.ClientConfigFromFile(resolvConfPath)
		if err != nil || len(cfg.Servers) == 0 {
			cfg = &dns.ClientConfig{Servers: []string{"127.0.0.1"}, Port: "53"}
		}
		out := make([]string, 0, len(cfg.Servers))
		for _, s := range cfg.Servers {
			out = append(out, net.JoinHostPort(s, cfg.Port))
		}
		return out, nil
	}
	out := make([]string, 0, len(servers))
	for _, s := range servers {
		if _, _, err := net.SplitHostPort(s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, net.JoinHostPort(s, "53"))
	}
	return out, nil
}

// query asks the servers in order and returns the answer of the first
// one that responds successfully.
func (r *Resolver) query(ctx context.Context, domain string, qtype uint16, targets []string) ([]string, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(domain), qtype)

	var lastErr error
	for _, server := range targets {
		in, _, err := r.client.ExchangeContext(ctx, m, server)
		if err != nil {
			lastErr = fmt.Errorf("exchange with %s: %w", server, err)
			continue
		}
		if in.Rcode != dns.RcodeSuccess {
			lastErr = fmt.Errorf("%s answered %s for %s", server, dns.RcodeToString[in.Rcode], domain)
			continue
		}
		var out []string
		for _, ans := range in.Answer {
			switch rr := ans.(type) {
			case *dns.A:
				out = append(out, rr.A.String())
			case *dns.AAAA:
				out = append(out, rr.AAAA.String())
			}
		}
		return out, nil
	}
	return nil, lastErr
}
