package registry

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/hollowcheck/hollowcheck/domain"
	"github.com/hollowcheck/hollowcheck/internal/facts"
	"github.com/hollowcheck/hollowcheck/internal/rules"
)

// registryForLanguage names which probe serves which language's imports.
var registryForLanguage = map[string]string{
	"python":     "pypi",
	"javascript": "npm",
	"typescript": "npm",
	"go":         "go",
	"rust":       "crates",
}

// Verifier is the Dependency Verifier (spec.md §4.5): it walks every
// import in the Fact Store, filters stdlib and allowlisted names, probes
// the rest (deduplicated and cached), and maps outcomes to Findings.
type Verifier struct {
	cache     *Cache
	allowlist *Allowlist
	probes    map[string]domain.RegistryProbe
	config    *domain.DependencyVerifyConfig
	progress  domain.ProgressManager
}

// NewVerifier builds a Verifier from the contract's
// dependency_verification section. cacheDir is the on-disk cache root
// (an external collaborator concern: the CLI resolves this to a
// user-config location).
func NewVerifier(config *domain.DependencyVerifyConfig, cacheDir string, progress domain.ProgressManager) *Verifier {
	ttl := time.Duration(config.CacheTTL()) * time.Hour
	client := &http.Client{Timeout: 10 * time.Second}
	if progress == nil {
		progress = &domain.NoOpProgressManager{}
	}
	var allowlistPatterns []string
	if config != nil {
		allowlistPatterns = config.Allowlist
	}
	return &Verifier{
		cache:     NewCache(cacheDir, ttl, 2048),
		allowlist: NewAllowlist(allowlistPatterns),
		probes: map[string]domain.RegistryProbe{
			"pypi":   NewPyPIProbe(client),
			"npm":    NewNpmProbe(client),
			"crates": NewCratesProbe(client),
			"go":     NewGoProxyProbe(client),
		},
		config:   config,
		progress: progress,
	}
}

// Verify runs the full pipeline described by spec.md §4.5, returning
// every hallucinated-dependency Finding. ctx governs the 10s-per-probe
// timeout and overall cancellation.
func (v *Verifier) Verify(ctx context.Context, store *facts.Store) []domain.Finding {
	if v.config == nil || !v.config.IsEnabled() {
		return nil
	}

	type job struct {
		file       string
		line       int
		language   string
		importPath string
		registry   string
		canonical  string
	}

	var jobs []job
	for _, f := range store.Files() {
		registryName, ok := registryForLanguage[f.Language]
		if !ok {
			continue
		}
		regConfig := v.config.RegistryFor(registryName)
		if regConfig != nil && !regConfig.IsEnabled() {
			continue
		}
		for _, imp := range f.Imports {
			if IsStdlib(f.Language, imp.ModulePath, "") {
				continue
			}
			if v.allowlist.Matches(imp.ModulePath) {
				continue
			}
			jobs = append(jobs, job{
				file:       f.RelPath,
				line:       imp.Line,
				language:   f.Language,
				importPath: imp.ModulePath,
				registry:   registryName,
				canonical:  Canonicalize(f.Language, imp.ModulePath),
			})
		}
	}
	if len(jobs) == 0 {
		return nil
	}

	task := v.progress.StartTask("verifying dependencies", len(jobs))
	defer task.Complete()

	sem := semaphore.NewWeighted(int64(v.config.Concurrency()))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var findings []domain.Finding

	for _, j := range jobs {
		j := j
		if err := sem.Acquire(ctx, 1); err != nil {
			break // context cancelled: remaining jobs are abandoned per spec.md §5
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			defer task.Increment(1)

			status := v.resolve(ctx, j.registry, j.canonical)
			if status == domain.PackageNotFound {
				mu.Lock()
				findings = append(findings, rules.HallucinatedDependencyFinding(j.file, j.line, j.importPath))
				mu.Unlock()
			} else if status == domain.PackageUnknown && v.config.ShouldFailOnTimeout() {
				mu.Lock()
				findings = append(findings, rules.HallucinatedDependencyFinding(j.file, j.line, j.importPath))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return findings
}

func (v *Verifier) resolve(ctx context.Context, registryName, canonical string) domain.PackageStatus {
	if status, ok := v.cache.Get(registryName, canonical); ok {
		return domain.PackageStatus(status)
	}
	probe, ok := v.probes[registryName]
	if !ok {
		return domain.PackageUnknown
	}

	timeout := 10 * time.Second
	if regCfg := v.config.RegistryFor(registryName); regCfg != nil {
		timeout = time.Duration(regCfg.TimeoutMillis()) * time.Millisecond
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	status, err := probe.Check(probeCtx, canonical)
	if err != nil {
		return domain.PackageUnknown
	}
	v.cache.Put(registryName, canonical, string(status))
	return status
}
