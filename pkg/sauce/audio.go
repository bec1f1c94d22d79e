package sauce

// AudioFormat is the FileType of a DataTypeAudio record.
type AudioFormat uint8

const (
	AudioMOD AudioFormat = iota
	Audio669
	AudioSTM
	AudioS3M
	AudioMTM
	AudioFAR
	AudioULT
	AudioAMF
	AudioDMF
	AudioOKT
	AudioROL
	AudioCMF
	AudioMID
	AudioSADT
	AudioVOC
	AudioWAV
	AudioSMP8
	AudioSMP8S
	AudioSMP16
	AudioSMP16S
	AudioPATCH8
	AudioPATCH16
	AudioXM
	AudioHSC
	AudioIT
)

var audioFormatNames = [...]string{
	"MOD", "669", "STM", "S3M", "MTM", "FAR", "ULT", "AMF", "DMF", "OKT", "ROL", "CMF", "MID",
	"SADT", "VOC", "WAV", "SMP8", "SMP8S", "SMP16", "SMP16S", "PATCH8", "PATCH16", "XM", "HSC", "IT",
}

func (f AudioFormat) String() string {
	if int(f) < len(audioFormatNames) {
		return audioFormatNames[f]
	}
	return "Unknown"
}

// HasSampleRate reports whether TInfo1 is meaningful for the format.
// Only raw sample dumps carry a rate.
func (f AudioFormat) HasSampleRate() bool {
	switch f {
	case AudioSMP8, AudioSMP8S, AudioSMP16, AudioSMP16S:
		return true
	}
	return false
}

func (f AudioFormat) IsStereo() bool { return f == AudioSMP8S || f == AudioSMP16S }

func (f AudioFormat) Is16Bit() bool {
	return f == AudioSMP16 || f == AudioSMP16S || f == AudioPATCH16
}

func (f AudioFormat) IsFMSynthesis() bool {
	switch f {
	case AudioROL, AudioCMF, AudioSADT, AudioHSC:
		return true
	}
	return false
}

func (f AudioFormat) IsTracker() bool {
	switch f {
	case AudioMOD, Audio669, AudioSTM, AudioS3M, AudioMTM, AudioFAR, AudioULT, AudioAMF, AudioDMF, AudioOKT, AudioXM, AudioIT:
		return true
	}
	return false
}

// Audio describes music and sample files. SampleRate is kept for every
// format so that records round trip, but it only has meaning when
// Format.HasSampleRate reports true.
type Audio struct {
	Format     AudioFormat
	SampleRate uint16
}

func (Audio) DataType() DataType { return DataTypeAudio }

func decodeAudio(p Payload) (Capabilities, bool) {
	if int(p.FileType) >= len(audioFormatNames) {
		return nil, false
	}
	return Audio{Format: AudioFormat(p.FileType), SampleRate: p.TInfo[0]}, true
}

func (a Audio) encode(p *Payload) error {
	p.FileType = uint8(a.Format)
	p.TInfo[0] = a.SampleRate
	return nil
}
