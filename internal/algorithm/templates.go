package algorithm

import "fmt"

// maxTemplateLength is the longest template in templateTable.
// Rendering reads seed bytes 0..len(template), so it must stay below SiteSeedLength.
const maxTemplateLength = 20

// Fails to compile if a template could read past the end of the seed.
var _ [SiteSeedLength - 1 - maxTemplateLength]struct{}

var templateTable = map[PasswordClass][]string{
	MaximumSecurityPassword: {
		"anoxxxxxxxxxxxxxxxxx",
		"axxxxxxxxxxxxxxxxxno",
	},
	LongPassword: {
		"CvcvnoCvcvCvcv",
		"CvcvCvcvnoCvcv",
		"CvcvCvcvCvcvno",
		"CvccnoCvcvCvcv",
		"CvccCvcvnoCvcv",
		"CvccCvcvCvcvno",
		"CvcvnoCvccCvcv",
		"CvcvCvccnoCvcv",
		"CvcvCvccCvcvno",
		"CvcvnoCvcvCvcc",
		"CvcvCvcvnoCvcc",
		"CvcvCvcvCvccno",
		"CvccnoCvccCvcv",
		"CvccCvccnoCvcv",
		"CvccCvccCvcvno",
		"CvcvnoCvccCvcc",
		"CvcvCvccnoCvcc",
		"CvcvCvccCvccno",
		"CvccnoCvcvCvcc",
		"CvccCvcvnoCvcc",
		"CvccCvcvCvccno",
	},
	MediumPassword: {
		"CvcnoCvc",
		"CvcCvcno",
	},
	BasicPassword: {
		"aaanaaan",
		"aannaaan",
		"aaannaaa",
	},
	ShortPassword: {
		"Cvcn",
	},
	PIN: {
		"nnnn",
	},
}

var characterGroups = map[byte]string{
	'V': "AEIOU",
	'C': "BCDFGHJKLMNPQRSTVWXYZ",
	'v': "aeiou",
	'c': "bcdfghjklmnpqrstvwxyz",
	'A': "AEIOUBCDFGHJKLMNPQRSTVWXYZ",
	'a': "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz",
	'n': "0123456789",
	'o': "@&%?,=[]_:-+*$#!'^~;()/.",
	'x': "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz0123456789!@#$%^&*()",
}

func init() {
	if err := verifyTemplates(); err != nil {
		panic(err)
	}
}

// verifyTemplates checks every template against maxTemplateLength and the
// character group alphabet.
func verifyTemplates() error {
	for class, templates := range templateTable {
		if len(templates) == 0 {
			return fmt.Errorf("%s has no templates", class)
		}
		for _, tpl := range templates {
			if len(tpl) == 0 || len(tpl) > maxTemplateLength {
				return fmt.Errorf("%s template %q has length %d, want 1..%d", class, tpl, len(tpl), maxTemplateLength)
			}
			for i := 0; i < len(tpl); i++ {
				if _, ok := characterGroups[tpl[i]]; !ok {
					return fmt.Errorf("%s template %q uses unknown symbol %q", class, tpl, tpl[i])
				}
			}
		}
	}
	return nil
}
