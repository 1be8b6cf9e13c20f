package constant

// ChildReferencesFn is the global function every Lua extractor must define.
const ChildReferencesFn = "ChildReferences"

// ExtractorTemplate is a Go text/template for scaffolding new Lua extractor files.
const ExtractorTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


----- IMPORTS -----
local regexp = require("regexp")
--- END IMPORTS ---



----- MAIN -----

--- Collects URL-like references to follow from a fetched page.
-- Returned values may be relative; they are resolved against the page host.
-- @param html string Raw page text
-- @return string[] Table of references in document order
function {{ .Fn }}(html)
	local refs = {}
	return refs
end

--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
