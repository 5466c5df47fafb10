package testutil

import (
	"fmt"
	"sync"
)

// ScriptedGenerator is a deterministic identifier source. Each kind of
// identifier pops from a scripted queue first and falls back to a counting
// sequence, so tests can force collisions or assert exact values.
type ScriptedGenerator struct {
	mu sync.Mutex

	accountNumbers []string
	secrets        []string
	chequeNumbers  []string
	cardNumbers    []string
	cvvs           []string

	seq int
}

func NewScriptedGenerator() *ScriptedGenerator { return &ScriptedGenerator{} }

func (g *ScriptedGenerator) PushAccountNumbers(numbers ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.accountNumbers = append(g.accountNumbers, numbers...)
}

func (g *ScriptedGenerator) PushSecrets(secrets ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.secrets = append(g.secrets, secrets...)
}

func (g *ScriptedGenerator) PushChequeNumbers(numbers ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.chequeNumbers = append(g.chequeNumbers, numbers...)
}

func (g *ScriptedGenerator) PushCardNumbers(numbers ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cardNumbers = append(g.cardNumbers, numbers...)
}

func (g *ScriptedGenerator) pop(queue *[]string, fallback string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(*queue) > 0 {
		v := (*queue)[0]
		*queue = (*queue)[1:]
		return v
	}
	g.seq++
	return fallback + fmt.Sprintf("%05d", g.seq)
}

func (g *ScriptedGenerator) AccountNumber() (string, error) {
	return g.pop(&g.accountNumbers, "9"), nil
}

func (g *ScriptedGenerator) Secret() (string, error) {
	return g.pop(&g.secrets, "5"), nil
}

func (g *ScriptedGenerator) ChequeNumber() (string, error) {
	return g.pop(&g.chequeNumbers, "7"), nil
}

func (g *ScriptedGenerator) CardNumber() (string, error) {
	return g.pop(&g.cardNumbers, "40000000000"), nil
}

func (g *ScriptedGenerator) CVV() (string, error) {
	return "123", nil
}

func (g *ScriptedGenerator) ID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("id-%05d", g.seq)
}
