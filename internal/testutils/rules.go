package testutils

import (
	"testing/fstest"
)

// FighterMageRulesFS returns a minimal rules directory whose class table
// holds only FIGHTER and FIGHTER_MAGE. MAGE has experience rows but no
// class row of its own. Levels cap at 3.
func FighterMageRulesFS() fstest.MapFS {
	files := map[string]string{
		"classes.2da": `2DA V1.0
0
               NAME_REF DESC_REF TITLE_REF MULTI ID MC_WAS_ID HUMAN
FIGHTER        10001    10101    10201     0     2  0x0008    1
FIGHTER_MAGE   10006    10106    10206     1     7  0         1
`,
		"xplevel.2da": `2DA V1.0
0
          1   2     3
FIGHTER   0   2000  4000
MAGE      0   2500  5000
`,
		"clskills.2da": `2DA V1.0
0
               STARTXP STARTXP2
FIGHTER        3000    4000
FIGHTER_MAGE   6000    8000
`,
		"kitlist.2da": `2DA V1.0
*
       MIXED HELP UNUSABLE CLASS
NONE   *     *    0        0
`,
		"magesch.2da": `2DA V1.0
0
             NAME_REF KIT
GENERALIST   10500    0
`,
		"races.2da": `2DA V1.0
0
       NAME_REF ID
HUMAN  10300    1
`,
	}

	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}
