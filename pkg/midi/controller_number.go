package midi

// Controller numbers with a conventional meaning in the MIDI 1.0 spec.
// Controllers 0-31 carry the most significant 7 bits of continuous
// controllers; 32-63 carry the corresponding least significant 7 bits.
const (
	CCBankSelect                ControllerNumber = 0
	CCModulationWheel           ControllerNumber = 1
	CCBreathController          ControllerNumber = 2
	CCFootController            ControllerNumber = 4
	CCPortamentoTime            ControllerNumber = 5
	CCDataEntry                 ControllerNumber = 6
	CCChannelVolume             ControllerNumber = 7
	CCBalance                   ControllerNumber = 8
	CCPan                       ControllerNumber = 10
	CCExpressionController      ControllerNumber = 11
	CCEffectControl1            ControllerNumber = 12
	CCEffectControl2            ControllerNumber = 13
	CCGeneralPurposeController1 ControllerNumber = 16
	CCGeneralPurposeController2 ControllerNumber = 17
	CCGeneralPurposeController3 ControllerNumber = 18
	CCGeneralPurposeController4 ControllerNumber = 19

	CCBankSelectLSB           ControllerNumber = 32
	CCModulationWheelLSB      ControllerNumber = 33
	CCBreathControllerLSB     ControllerNumber = 34
	CCFootControllerLSB       ControllerNumber = 36
	CCPortamentoTimeLSB       ControllerNumber = 37
	CCDataEntryLSB            ControllerNumber = 38
	CCChannelVolumeLSB        ControllerNumber = 39
	CCBalanceLSB              ControllerNumber = 40
	CCPanLSB                  ControllerNumber = 42
	CCExpressionControllerLSB ControllerNumber = 43
	CCEffectControl1LSB       ControllerNumber = 44
	CCEffectControl2LSB       ControllerNumber = 45

	CCGeneralPurposeController1LSB ControllerNumber = 48
	CCGeneralPurposeController2LSB ControllerNumber = 49
	CCGeneralPurposeController3LSB ControllerNumber = 50
	CCGeneralPurposeController4LSB ControllerNumber = 51
)

// CorrespondingLSB returns the controller number that carries the least
// significant 7 bits when cn addresses the most significant 7 bits of a
// 14-bit control change. The pairing is fixed by the MIDI 1.0 spec: MSB
// controller n in 0-31 pairs with LSB controller n+32. ok is false for any
// other controller number.
func (cn ControllerNumber) CorrespondingLSB() (lsb ControllerNumber, ok bool) {
	if cn.Uint8() > 31 {
		return 0, false
	}
	return cn + 32, true
}
