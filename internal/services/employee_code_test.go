package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextEmployeeCode_EmptyBase(t *testing.T) {
	code := NextEmployeeCode(nil)
	assert.Equal(t, "EMP0001", code, "на пустой базе выдаётся первый код")
}

func TestNextEmployeeCode_SequentialGrowth(t *testing.T) {
	code := NextEmployeeCode([]string{"EMP0001", "EMP0002", "EMP0003"})
	assert.Equal(t, "EMP0004", code)
}

func TestNextEmployeeCode_GapsAreNotReused(t *testing.T) {
	// Дыры после удалений не заполняются, берётся максимум + 1
	code := NextEmployeeCode([]string{"EMP0001", "EMP0002", "EMP0004"})
	assert.Equal(t, "EMP0005", code)
}

func TestNextEmployeeCode_IgnoresLegacyJunk(t *testing.T) {
	existing := []string{"EMP0007", "STAFF-12", "emp0009", "EMPX3", "", "  "}
	code := NextEmployeeCode(existing)
	assert.Equal(t, "EMP0008", code, "коды чужого формата не влияют на номер")
}

func TestNextEmployeeCode_TrimsWhitespace(t *testing.T) {
	code := NextEmployeeCode([]string{"  EMP0003  "})
	assert.Equal(t, "EMP0004", code)
}

func TestNextEmployeeCode_PadsToFourDigits(t *testing.T) {
	assert.Equal(t, "EMP0010", NextEmployeeCode([]string{"EMP0009"}))
	assert.Equal(t, "EMP10000", NextEmployeeCode([]string{"EMP9999"}), "после EMP9999 код удлиняется")
}

func TestNextEmployeeCode_BumpsPastVerbatimCollision(t *testing.T) {
	// EMP005 разобрался как номер 5, но кандидат EMP0005 свободен
	code := NextEmployeeCode([]string{"EMP004"})
	assert.Equal(t, "EMP0005", code)

	// А здесь кандидат дословно занят, поэтому номер сдвигается дальше
	code = NextEmployeeCode([]string{"EMP004", "EMP0005"})
	assert.Equal(t, "EMP0006", code)
}

func TestNextEmployeeCode_PureFunction(t *testing.T) {
	existing := []string{"EMP0001", "EMP0002"}
	first := NextEmployeeCode(existing)
	second := NextEmployeeCode(existing)
	assert.Equal(t, first, second, "без вставки в базу повторный вызов выдаёт тот же код")
	assert.Equal(t, []string{"EMP0001", "EMP0002"}, existing, "вход не мутируется")
}
