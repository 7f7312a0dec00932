// Package hostinfo describes the machine the benchmark runs on.
package hostinfo

import (
	"context"
	"runtime"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
	gcpu "github.com/shirou/gopsutil/v4/cpu"
	gmem "github.com/shirou/gopsutil/v4/mem"
	"go.uber.org/multierr"
	"golang.org/x/sys/cpu"
)

// Collect gathers CPU model, core count, total memory and the CPU features that
// matter for byte loops. Fields that cannot be read are left empty; the
// combined error says which lookups failed.
func Collect(ctx context.Context) (domain.HostInfo, error) {
	info := domain.HostInfo{CPUFeatures: Features()}
	var errs error

	if cores, err := gcpu.CountsWithContext(ctx, true); err != nil {
		errs = multierr.Append(errs, err)
		info.LogicalCores = runtime.NumCPU()
	} else {
		info.LogicalCores = cores
	}

	if stats, err := gcpu.InfoWithContext(ctx); err != nil {
		errs = multierr.Append(errs, err)
	} else if len(stats) > 0 {
		info.CPUModel = stats[0].ModelName
	}

	if vm, err := gmem.VirtualMemoryWithContext(ctx); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		info.TotalMemory = vm.Total
	}

	return info, errs
}

// Features lists the vector extensions reported by golang.org/x/sys/cpu for
// the running architecture.
func Features() []string {
	var features []string
	add := func(name string, ok bool) {
		if ok {
			features = append(features, name)
		}
	}

	switch runtime.GOARCH {
	case "amd64", "386":
		add("sse2", cpu.X86.HasSSE2)
		add("sse41", cpu.X86.HasSSE41)
		add("avx", cpu.X86.HasAVX)
		add("avx2", cpu.X86.HasAVX2)
		add("avx512f", cpu.X86.HasAVX512F)
		add("bmi2", cpu.X86.HasBMI2)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("sve", cpu.ARM64.HasSVE)
		add("atomics", cpu.ARM64.HasATOMICS)
	}

	return features
}
