package rng

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"
)

func TestNewRNG_Determinism(t *testing.T) {
	masterSeed := uint64(123456789)
	stageName := "randomized_through_hole"
	configHash := sha256.Sum256([]byte("test_config"))

	rng1 := NewRNG(masterSeed, stageName, configHash[:])
	rng2 := NewRNG(masterSeed, stageName, configHash[:])

	if rng1.Seed() != rng2.Seed() {
		t.Errorf("same inputs produced different seeds: %d vs %d", rng1.Seed(), rng2.Seed())
	}

	for i := 0; i < 100; i++ {
		v1 := rng1.Float64Range(0, 1000)
		v2 := rng2.Float64Range(0, 1000)
		if v1 != v2 {
			t.Errorf("iteration %d: same RNGs produced different values: %v vs %v", i, v1, v2)
		}
	}
}

func TestNewRNG_DifferentStages(t *testing.T) {
	masterSeed := uint64(123456789)
	configHash := sha256.Sum256([]byte("same_config"))

	rng1 := NewRNG(masterSeed, "randomized_through_hole", configHash[:])
	rng2 := NewRNG(masterSeed, "randomized_counterbore", configHash[:])

	if rng1.Seed() == rng2.Seed() {
		t.Error("different stages produced identical seeds")
	}
	if rng1.StageName() != "randomized_through_hole" {
		t.Errorf("stage name not preserved: got %s", rng1.StageName())
	}

	v1 := rng1.Float64Range(0, 1)
	v2 := rng2.Float64Range(0, 1)
	if v1 == v2 {
		t.Error("different stages produced identical first values (extremely unlikely)")
	}
}

func TestNewRNG_DifferentConfigs(t *testing.T) {
	masterSeed := uint64(123456789)
	stageName := "test_stage"

	config1Hash := sha256.Sum256([]byte("config_v1"))
	config2Hash := sha256.Sum256([]byte("config_v2"))

	rng1 := NewRNG(masterSeed, stageName, config1Hash[:])
	rng2 := NewRNG(masterSeed, stageName, config2Hash[:])

	if rng1.Seed() == rng2.Seed() {
		t.Error("different configs produced identical seeds")
	}
}

func TestNewRNG_DifferentMasterSeeds(t *testing.T) {
	stageName := "test_stage"
	configHash := sha256.Sum256([]byte("same_config"))

	rng1 := NewRNG(uint64(111), stageName, configHash[:])
	rng2 := NewRNG(uint64(222), stageName, configHash[:])

	if rng1.Seed() == rng2.Seed() {
		t.Error("different master seeds produced identical seeds")
	}
}

func TestRNG_Float64Range(t *testing.T) {
	masterSeed := uint64(123456789)
	stageName := "test"
	configHash := sha256.Sum256([]byte("config"))

	rng := NewRNG(masterSeed, stageName, configHash[:])

	for i := 0; i < 100; i++ {
		v := rng.Float64Range(5.0, 10.0)
		if v < 5.0 || v >= 10.0 {
			t.Errorf("Float64Range(5.0, 10.0) produced out-of-range value: %f", v)
		}
	}
}

func TestRNG_Float64RangePanic(t *testing.T) {
	masterSeed := uint64(123456789)
	stageName := "test"
	configHash := sha256.Sum256([]byte("config"))
	rng := NewRNG(masterSeed, stageName, configHash[:])

	defer func() {
		if r := recover(); r == nil {
			t.Error("Float64Range(10.0, 5.0) did not panic")
		}
	}()

	rng.Float64Range(10.0, 5.0)
}

// TestSubSeedDerivationFormula verifies the exact derivation formula.
func TestSubSeedDerivationFormula(t *testing.T) {
	masterSeed := uint64(123456789)
	stageName := "test_stage"
	configHash := []byte{1, 2, 3, 4, 5}

	h := sha256.New()
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], masterSeed)
	h.Write(buf[:])
	h.Write([]byte(stageName))
	h.Write(configHash)
	hash := h.Sum(nil)
	expected := binary.BigEndian.Uint64(hash[:8])

	rng := NewRNG(masterSeed, stageName, configHash)
	if rng.Seed() != expected {
		t.Errorf("derived seed mismatch: got %d, want %d", rng.Seed(), expected)
	}
}

func BenchmarkNewRNG(b *testing.B) {
	masterSeed := uint64(123456789)
	stageName := "benchmark_stage"
	configHash := sha256.Sum256([]byte("benchmark_config"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NewRNG(masterSeed, stageName, configHash[:])
	}
}

func BenchmarkRNG_Float64Range(b *testing.B) {
	masterSeed := uint64(123456789)
	stageName := "benchmark"
	configHash := sha256.Sum256([]byte("config"))
	rng := NewRNG(masterSeed, stageName, configHash[:])

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rng.Float64Range(0, 1000)
	}
}
