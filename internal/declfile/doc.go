// Package declfile reads descriptions from YAML or HCL files.
//
// # YAML
//
//	descriptions:
//	  - name: LevelProxy
//	    target: net.minecraft.world.level.Level
//	    declarations:
//	      - {name: number, kind: getter, params: [receiver]}
//	      - {name: name, kind: method, member: Name, params: [receiver]}
//	  - name: ServerLevelProxy
//	    target: net.minecraft.server.level.ServerLevel
//	    extends: [LevelProxy]
//
// # HCL
//
//	description "LevelProxy" {
//	  target = "net.minecraft.world.level.Level"
//
//	  declaration "number" {
//	    kind   = "getter"
//	    params = ["receiver"]
//	  }
//	}
//
// Parameters are written as "receiver", "class:<declared class name>",
// "proxy:<description name>" or a runtime type name. Default behaviors
// are code and cannot be written in files.
package declfile
