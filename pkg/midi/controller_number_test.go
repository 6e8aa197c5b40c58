package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamedControllerPairs(t *testing.T) {
	pairs := map[ControllerNumber]ControllerNumber{
		CCBankSelect:                CCBankSelectLSB,
		CCModulationWheel:           CCModulationWheelLSB,
		CCBreathController:          CCBreathControllerLSB,
		CCFootController:            CCFootControllerLSB,
		CCPortamentoTime:            CCPortamentoTimeLSB,
		CCDataEntry:                 CCDataEntryLSB,
		CCChannelVolume:             CCChannelVolumeLSB,
		CCBalance:                   CCBalanceLSB,
		CCPan:                       CCPanLSB,
		CCExpressionController:      CCExpressionControllerLSB,
		CCEffectControl1:            CCEffectControl1LSB,
		CCEffectControl2:            CCEffectControl2LSB,
		CCGeneralPurposeController1: CCGeneralPurposeController1LSB,
		CCGeneralPurposeController2: CCGeneralPurposeController2LSB,
		CCGeneralPurposeController3: CCGeneralPurposeController3LSB,
		CCGeneralPurposeController4: CCGeneralPurposeController4LSB,
	}

	for msb, want := range pairs {
		lsb, ok := msb.CorrespondingLSB()
		assert.True(t, ok)
		assert.Equal(t, want, lsb)
	}
}
