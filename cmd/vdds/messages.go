package main

import (
	"unsafe"

	"github.com/google/uuid"

	vdds "github.com/nodebus/vdds"
)

// pingPayload is the data carried by a pingMsg, overlaid onto the unused
// tail of its embedded Envelope rather than added as extra struct fields.
type pingPayload struct {
	Seq       uint64
	Timestamp uint64
}

// pingMsg embeds vdds.Envelope and nothing else, so it stays exactly
// vdds.EnvelopeSize bytes — required by vdds.NewPublisher/NewSubscriber.
type pingMsg struct {
	vdds.Envelope
}

func (pingMsg) DataTypeName() string { return "vdds.cli.ping-msg" }

func (m *pingMsg) Payload() *pingPayload {
	return (*pingPayload)(unsafe.Pointer(&m.Plain))
}

func newPingMsg(seq uint64) pingMsg {
	var m pingMsg
	m.Payload().Seq = seq
	return m
}

// otherMsg has no relationship to pingMsg other than also being a valid,
// Envelope-sized message type with a distinct data type name — used by the
// collision scenario to show a topic rejecting a second type.
type otherMsg struct {
	vdds.Envelope
}

func (otherMsg) DataTypeName() string { return "vdds.cli.other-msg" }

// dmaPayload is a tiny out-of-band buffer stand-in for the shared scenario,
// playing the role of a DMA pool buffer too large to fit in Envelope.Plain.
// id tags the buffer the way a real DMA pool would tag an allocation, so
// the shared scenario's output can name which buffer it walked through.
type dmaPayload struct {
	id   string
	data []byte
}

func newDMAPayload(data []byte) *dmaPayload {
	return &dmaPayload{id: uuid.NewString(), data: data}
}

type dmaMsg struct {
	vdds.Envelope
}

func (dmaMsg) DataTypeName() string { return "vdds.cli.dma-msg" }
