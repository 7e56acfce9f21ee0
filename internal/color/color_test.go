package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderersKeepMessageText(t *testing.T) {
	assert.Contains(t, OK("tunnel on port %d", 4242), "tunnel on port 4242")
	assert.Contains(t, Step("starting %s", "login"), "starting login")
	assert.Contains(t, Fail("exit code %d", 3), "exit code 3")
	assert.Contains(t, Warn("aborted"), "aborted")
	assert.Contains(t, Muted("[sso] %s", "line"), "[sso] line")
	assert.Contains(t, Bold("bastion"), "bastion")
}

func TestRenderersPassThroughPercentLiterals(t *testing.T) {
	// Remote output is rendered via a "%s" format, so % characters in the
	// text itself must survive untouched.
	assert.Contains(t, Muted("%s", "upload 100% complete"), "upload 100% complete")
	assert.Contains(t, Fail("%s", "exit 1: 50%"), "exit 1: 50%")
}

func TestPanelContainsTitleAndBody(t *testing.T) {
	out := Panel("AWS SSO Login via SSH", "SSH alias:  bastion")

	assert.Contains(t, out, "AWS SSO Login via SSH")
	assert.Contains(t, out, "bastion")
}
