package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zerobacojp/ocr-normalizer/constants"
)

func TestSplitContact(t *testing.T) {
	c := SplitContact("虹ヶ丘１－２－１、044-988-4952、(090-3686-6434)、abc@xyz.com")

	assert.Equal(t, "虹ヶ丘1－2－1", c.Address)
	assert.Equal(t, "044-988-4952、(090-3686-6434)", c.Tel)
	assert.Equal(t, "abc@xyz.com", c.Email)
}

func TestSplitContactEmpty(t *testing.T) {
	c := SplitContact("")

	assert.Equal(t, constants.Sentinel, c.Address)
	assert.Equal(t, constants.Sentinel, c.Tel)
	assert.Equal(t, constants.Sentinel, c.Email)
}

func TestSplitContactPhoneOnly(t *testing.T) {
	c := SplitContact("044-988-4952")

	assert.Equal(t, constants.Sentinel, c.Address)
	assert.Equal(t, "044-988-4952", c.Tel)
	assert.Equal(t, constants.Sentinel, c.Email)
}

func TestSplitContactLongVowelHyphen(t *testing.T) {
	// OCR reads phone hyphens as the long vowel mark
	c := SplitContact("虹ヶ丘３ー４、044ー988ー4952")

	assert.Equal(t, "虹ヶ丘3ー4", c.Address)
	assert.Equal(t, "044ー988ー4952", c.Tel)
}

func TestSplitContactCollapsesSeparatorRuns(t *testing.T) {
	c := SplitContact("、、虹ヶ丘３丁目 、、 コーポ虹２０２、")

	assert.Equal(t, "虹ヶ丘3丁目、コーポ虹202", c.Address)
	assert.Equal(t, constants.Sentinel, c.Tel)
	assert.Equal(t, constants.Sentinel, c.Email)
}
