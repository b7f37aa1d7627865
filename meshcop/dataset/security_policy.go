/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package dataset

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/twine-rs/twine/meshcop/tlv"
)

// VersionThreshold is the oldest Thread version allowed to route.
type VersionThreshold uint8

// Version thresholds.
const (
	ProtocolVersion2 VersionThreshold = iota
	ProtocolVersion3
	ProtocolVersion4
	ProtocolVersion5
)

func (v VersionThreshold) String() string {
	switch v {
	case ProtocolVersion2:
		return "1.1"
	case ProtocolVersion3:
		return "1.2"
	case ProtocolVersion4:
		return "1.3"
	case ProtocolVersion5:
		return "1.4"
	}
	return "unknown(" + strconv.Itoa(int(v)) + ")"
}

// Security policy bit positions.
const (
	policyRotationShift         = 16
	policyObtainNetworkKey      = 1 << 15 // o
	policyNativeCommissioning   = 1 << 14 // n
	policyLegacyRouters         = 1 << 13 // r
	policyExternalCommissioner  = 1 << 12 // c
	policyCcmDisabled           = 1 << 10 // C when clear
	policyAutonomousEnrollDis   = 1 << 9  // e when clear
	policyKeyProvisioningDis    = 1 << 8  // p when clear
	policyBleLinkDisabled       = 1 << 7  // L when clear
	policyNonCcmRoutersDisabled = 1 << 6  // R when clear
	policyReservedMask          = 0x7 << 3
	policyVersionThresholdMask  = 0x7

	policyDefault        = 0x02A0F7F8
	defaultRotationHours = 672
	securityPolicyLength = 4
)

// SecurityPolicy is the 32-bit security policy of a Thread network.
type SecurityPolicy uint32

// DefaultSecurityPolicy returns the policy used by new networks: 672 hours, onrc, version threshold 0.
func DefaultSecurityPolicy() SecurityPolicy {
	return policyDefault
}

func (p SecurityPolicy) has(bit uint32) bool {
	return uint32(p)&bit != 0
}

func (p SecurityPolicy) RotationTimeHours() uint16 {
	return uint16(uint32(p) >> policyRotationShift)
}

func (p SecurityPolicy) ObtainNetworkKeyEnabled() bool {
	return p.has(policyObtainNetworkKey)
}

func (p SecurityPolicy) NativeCommissioningEnabled() bool {
	return p.has(policyNativeCommissioning)
}

func (p SecurityPolicy) LegacyRoutersEnabled() bool {
	return p.has(policyLegacyRouters)
}

func (p SecurityPolicy) ExternalCommissionerEnabled() bool {
	return p.has(policyExternalCommissioner)
}

func (p SecurityPolicy) CommercialCommissioningEnabled() bool {
	return !p.has(policyCcmDisabled)
}

func (p SecurityPolicy) AutonomousEnrollmentEnabled() bool {
	return !p.has(policyAutonomousEnrollDis)
}

func (p SecurityPolicy) NetworkKeyProvisioningEnabled() bool {
	return !p.has(policyKeyProvisioningDis)
}

func (p SecurityPolicy) BleLinkEnabled() bool {
	return !p.has(policyBleLinkDisabled)
}

func (p SecurityPolicy) NonCcmRoutersEnabled() bool {
	return !p.has(policyNonCcmRoutersDisabled)
}

// RawVersionThreshold returns the three version threshold bits.
func (p SecurityPolicy) RawVersionThreshold() uint8 {
	return uint8(uint32(p) & policyVersionThresholdMask)
}

// VersionThreshold decodes the version threshold. The r bit forces ProtocolVersion2.
func (p SecurityPolicy) VersionThreshold() (VersionThreshold, error) {
	if p.LegacyRoutersEnabled() {
		return ProtocolVersion2, nil
	}
	switch raw := p.RawVersionThreshold(); raw {
	case 0:
		return ProtocolVersion3, nil
	case 1:
		return ProtocolVersion4, nil
	case 2:
		return ProtocolVersion5, nil
	default:
		return 0, errors.Wrapf(ErrUnknownVersionThreshold, "raw value %d", raw)
	}
}

func (SecurityPolicy) TlvType() uint8 {
	return tlv.SecurityPolicy
}

func (SecurityPolicy) TlvLength() int {
	return securityPolicyLength
}

func (SecurityPolicy) ConstantTlvLength() int {
	return securityPolicyLength
}

func (p SecurityPolicy) EncodeValue(buf []byte) (int, error) {
	return tlv.EncodeUint(buf, uint32(p))
}

func (p *SecurityPolicy) DecodeValue(value []byte) {
	*p = SecurityPolicy(tlv.DecodeUint[uint32](value))
}

// String renders the policy the way the OpenThread CLI does, e.g. "672 onrc 0".
func (p SecurityPolicy) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(p.RotationTimeHours())))
	sb.WriteByte(' ')
	flags := []struct {
		set  bool
		flag byte
	}{
		{p.ObtainNetworkKeyEnabled(), 'o'},
		{p.NativeCommissioningEnabled(), 'n'},
		{p.LegacyRoutersEnabled(), 'r'},
		{p.ExternalCommissionerEnabled(), 'c'},
		{p.CommercialCommissioningEnabled(), 'C'},
		{p.AutonomousEnrollmentEnabled(), 'e'},
		{p.NetworkKeyProvisioningEnabled(), 'p'},
		{p.BleLinkEnabled(), 'L'},
		{p.NonCcmRoutersEnabled(), 'R'},
	}
	for _, f := range flags {
		if f.set {
			sb.WriteByte(f.flag)
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(int(p.RawVersionThreshold())))
	return sb.String()
}

// ParseSecurityPolicy parses the form printed by String, e.g. "672 onrc 0".
func ParseSecurityPolicy(s string) (SecurityPolicy, error) {
	fields := strings.Split(strings.TrimSpace(s), " ")
	if len(fields) != 3 {
		return 0, errors.Wrapf(ErrInvalidSecurityPolicy, "%q: want \"<rotation> <flags> <version>\"", s)
	}
	rotation, err := strconv.ParseUint(fields[0], 10, 16)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSecurityPolicy, "rotation %q", fields[0])
	}
	version, err := strconv.ParseUint(fields[2], 10, 3)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSecurityPolicy, "version threshold %q", fields[2])
	}

	v := uint32(rotation)<<policyRotationShift | policyReservedMask | uint32(version) |
		policyCcmDisabled | policyAutonomousEnrollDis | policyKeyProvisioningDis |
		policyBleLinkDisabled | policyNonCcmRoutersDisabled
	for _, flag := range fields[1] {
		switch flag {
		case 'o':
			v |= policyObtainNetworkKey
		case 'n':
			v |= policyNativeCommissioning
		case 'r':
			v |= policyLegacyRouters
		case 'c':
			v |= policyExternalCommissioner
		case 'C':
			v &^= policyCcmDisabled
		case 'e':
			v &^= policyAutonomousEnrollDis
		case 'p':
			v &^= policyKeyProvisioningDis
		case 'L':
			v &^= policyBleLinkDisabled
		case 'R':
			v &^= policyNonCcmRoutersDisabled
		default:
			return 0, errors.Wrapf(ErrInvalidSecurityPolicy, "unknown flag %q", flag)
		}
	}
	return SecurityPolicy(v), nil
}

// SecurityPolicyBuilder assembles a SecurityPolicy. Every field must be set before Build.
type SecurityPolicyBuilder struct {
	obtainNetworkKey      *bool
	nativeCommissioning   *bool
	legacyRouters         *bool
	externalCommissioner  *bool
	ccmDisabled           *bool
	autonomousEnrollDis   *bool
	keyProvisioningDis    *bool
	bleLinkDisabled       *bool
	nonCcmRoutersDisabled *bool
	versionThreshold      *VersionThreshold
	rotationHours         *uint16
}

func ptr[T any](v T) *T {
	return &v
}

// NewSecurityPolicyBuilder returns a builder with nothing set.
func NewSecurityPolicyBuilder() *SecurityPolicyBuilder {
	return &SecurityPolicyBuilder{}
}

// WithDefaultPolicy returns a builder preset to DefaultSecurityPolicy.
func WithDefaultPolicy() *SecurityPolicyBuilder {
	return &SecurityPolicyBuilder{
		obtainNetworkKey:      ptr(true),
		nativeCommissioning:   ptr(true),
		legacyRouters:         ptr(true),
		externalCommissioner:  ptr(true),
		ccmDisabled:           ptr(true),
		autonomousEnrollDis:   ptr(true),
		keyProvisioningDis:    ptr(true),
		bleLinkDisabled:       ptr(true),
		nonCcmRoutersDisabled: ptr(true),
		versionThreshold:      ptr(ProtocolVersion2),
		rotationHours:         ptr(uint16(defaultRotationHours)),
	}
}

// WithDisabledPolicy returns a builder with every feature off and a 1.2 version threshold.
func WithDisabledPolicy() *SecurityPolicyBuilder {
	return &SecurityPolicyBuilder{
		obtainNetworkKey:      ptr(false),
		nativeCommissioning:   ptr(false),
		legacyRouters:         ptr(false),
		externalCommissioner:  ptr(false),
		ccmDisabled:           ptr(true),
		autonomousEnrollDis:   ptr(true),
		keyProvisioningDis:    ptr(true),
		bleLinkDisabled:       ptr(true),
		nonCcmRoutersDisabled: ptr(true),
		versionThreshold:      ptr(ProtocolVersion3),
		rotationHours:         ptr(uint16(defaultRotationHours)),
	}
}

func (b *SecurityPolicyBuilder) ObtainNetworkKey(enabled bool) *SecurityPolicyBuilder {
	b.obtainNetworkKey = ptr(enabled)
	return b
}

func (b *SecurityPolicyBuilder) NativeCommissioning(enabled bool) *SecurityPolicyBuilder {
	b.nativeCommissioning = ptr(enabled)
	return b
}

// LegacyRouters sets the r bit. A version threshold other than ProtocolVersion2 clears it again on Build.
func (b *SecurityPolicyBuilder) LegacyRouters(enabled bool) *SecurityPolicyBuilder {
	b.legacyRouters = ptr(enabled)
	return b
}

func (b *SecurityPolicyBuilder) ExternalCommissioner(enabled bool) *SecurityPolicyBuilder {
	b.externalCommissioner = ptr(enabled)
	return b
}

func (b *SecurityPolicyBuilder) CommercialCommissioning(enabled bool) *SecurityPolicyBuilder {
	b.ccmDisabled = ptr(!enabled)
	return b
}

func (b *SecurityPolicyBuilder) AutonomousEnrollment(enabled bool) *SecurityPolicyBuilder {
	b.autonomousEnrollDis = ptr(!enabled)
	return b
}

func (b *SecurityPolicyBuilder) NetworkKeyProvisioning(enabled bool) *SecurityPolicyBuilder {
	b.keyProvisioningDis = ptr(!enabled)
	return b
}

func (b *SecurityPolicyBuilder) BleLink(enabled bool) *SecurityPolicyBuilder {
	b.bleLinkDisabled = ptr(!enabled)
	return b
}

func (b *SecurityPolicyBuilder) NonCcmRouters(enabled bool) *SecurityPolicyBuilder {
	b.nonCcmRoutersDisabled = ptr(!enabled)
	return b
}

func (b *SecurityPolicyBuilder) VersionThreshold(v VersionThreshold) *SecurityPolicyBuilder {
	b.versionThreshold = ptr(v)
	return b
}

func (b *SecurityPolicyBuilder) RotationTimeHours(hours uint16) *SecurityPolicyBuilder {
	b.rotationHours = ptr(hours)
	return b
}

// Build returns the policy or ErrIncompleteSecurityPolicy if any field is unset.
func (b *SecurityPolicyBuilder) Build() (SecurityPolicy, error) {
	bools := []*bool{
		b.obtainNetworkKey, b.nativeCommissioning, b.legacyRouters, b.externalCommissioner,
		b.ccmDisabled, b.autonomousEnrollDis, b.keyProvisioningDis, b.bleLinkDisabled,
		b.nonCcmRoutersDisabled,
	}
	for _, v := range bools {
		if v == nil {
			return 0, ErrIncompleteSecurityPolicy
		}
	}
	if b.versionThreshold == nil || b.rotationHours == nil {
		return 0, ErrIncompleteSecurityPolicy
	}

	v := uint32(*b.rotationHours) << policyRotationShift
	set := func(on bool, bit uint32) {
		if on {
			v |= bit
		}
	}
	set(*b.obtainNetworkKey, policyObtainNetworkKey)
	set(*b.nativeCommissioning, policyNativeCommissioning)
	set(*b.legacyRouters, policyLegacyRouters)
	set(*b.externalCommissioner, policyExternalCommissioner)
	set(*b.ccmDisabled, policyCcmDisabled)
	set(*b.autonomousEnrollDis, policyAutonomousEnrollDis)
	set(*b.keyProvisioningDis, policyKeyProvisioningDis)
	set(*b.bleLinkDisabled, policyBleLinkDisabled)
	set(*b.nonCcmRoutersDisabled, policyNonCcmRoutersDisabled)
	v |= policyReservedMask

	switch *b.versionThreshold {
	case ProtocolVersion2:
		v |= policyLegacyRouters
	case ProtocolVersion3:
		v &^= policyLegacyRouters
	case ProtocolVersion4:
		v &^= policyLegacyRouters
		v |= 1
	case ProtocolVersion5:
		v &^= policyLegacyRouters
		v |= 2
	default:
		return 0, errors.Wrapf(ErrUnknownVersionThreshold, "threshold %d", *b.versionThreshold)
	}
	return SecurityPolicy(v), nil
}
