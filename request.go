package inpaint

import (
	"fmt"
	"strings"

	"github.com/gogpu/inpaint/prompt"
)

// InpaintRequest is the body of an inpainting call: edit the masked region
// of BaseImage according to Instructions. Images are data URLs. Sending it
// is up to the caller.
type InpaintRequest struct {
	SessionID    string `json:"session_id"`
	MemberID     string `json:"member_id"`
	BaseImage    string `json:"base_image_b64"`
	MaskImage    string `json:"mask_image_b64"`
	Instructions string `json:"edit_instructions"`
}

// NewInpaintRequest validates and assembles an inpaint request.
//
// labels names the available reference images in order; "@N" references
// in instructions are checked against len(labels) and a legend of the
// cited labels is appended. It fails with ErrNoRegion for an empty mask,
// ErrEmptyInstructions for blank instructions and
// prompt.ErrInvalidReferences for references to missing images.
func NewInpaintRequest(sessionID, memberID, base, mask, instructions string, labels []string) (*InpaintRequest, error) {
	if mask == "" {
		return nil, ErrNoRegion
	}
	if strings.TrimSpace(instructions) == "" {
		return nil, ErrEmptyInstructions
	}
	if err := prompt.Validate(instructions, len(labels)).Err(); err != nil {
		return nil, fmt.Errorf("inpaint: %w", err)
	}
	return &InpaintRequest{
		SessionID:    sessionID,
		MemberID:     memberID,
		BaseImage:    base,
		MaskImage:    mask,
		Instructions: prompt.Annotate(instructions, labels),
	}, nil
}

// InpaintRequest exports the current mask and assembles a request for
// base. It fails like ExportMask when nothing is painted.
func (c *Canvas) InpaintRequest(sessionID, memberID, base, instructions string, labels []string) (*InpaintRequest, error) {
	mask, err := c.ExportMaskDataURL()
	if err != nil {
		return nil, err
	}
	return NewInpaintRequest(sessionID, memberID, base, mask, instructions, labels)
}
